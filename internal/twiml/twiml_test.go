package twiml

import (
	"strings"
	"testing"
)

func TestReply(t *testing.T) {
	out, err := Reply("💰 Gasto de R$50.00 em 'Posto' registrado com sucesso!")
	if err != nil {
		t.Fatalf("Reply error: %v", err)
	}
	body := string(out)
	if !strings.Contains(body, "<Response>") || !strings.Contains(body, "</Response>") {
		t.Fatalf("missing Response element: %s", body)
	}
	if !strings.Contains(body, "<Message>") {
		t.Fatalf("missing Message element: %s", body)
	}
	if !strings.Contains(body, "R$50.00") {
		t.Fatalf("missing body text: %s", body)
	}
}

func TestReplyEscapesMarkup(t *testing.T) {
	out, err := Reply(`use GASTO <valor> & categoria`)
	if err != nil {
		t.Fatalf("Reply error: %v", err)
	}
	body := string(out)
	if strings.Contains(body, "<valor>") {
		t.Fatalf("unescaped markup: %s", body)
	}
	if !strings.Contains(body, "&lt;valor&gt;") || !strings.Contains(body, "&amp;") {
		t.Fatalf("expected escaped text: %s", body)
	}
}
