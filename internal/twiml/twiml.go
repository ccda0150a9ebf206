// Package twiml renders the webhook reply body. Twilio expects an XML
// document with one Message element per outbound text; this system sends
// exactly one per inbound message.
package twiml

import "github.com/beevik/etree"

// Reply builds <Response><Message>body</Message></Response>.
func Reply(body string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	response := doc.CreateElement("Response")
	message := response.CreateElement("Message")
	message.SetText(body)
	return doc.WriteToBytes()
}
