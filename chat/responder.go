// Package chat implements the scripted help-desk responder. It is a
// stateless keyword lookup, not a support protocol: Respond is a pure
// function so the same question always gets the same answer.
package chat

import (
	"fmt"
	"hash/fnv"
	"strings"
)

var fallbacks = []string{
	"Thank you for reaching out. Your report has been noted and the concerned department will review it shortly.",
	"We have received your message. Please keep your report ID handy for any follow-up.",
	"Our team reviews all reports in the order they arrive. You can track progress from the My Reports screen.",
	"Thanks for helping improve your community. We will update the report status as soon as there is progress.",
	"Your concern matters to us. The relevant authority has been notified.",
	"We appreciate your patience. Resolution times vary by department and issue severity.",
	"For urgent safety hazards, please also contact the local emergency helpline.",
	"You can add more details to a pending report by editing it from the My Reports screen.",
}

// Respond returns the canned reply for a citizen message. Keyword
// matches take precedence; anything else maps to a fallback chosen by
// a stable hash of the message.
func Respond(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "status") || strings.Contains(lower, "progress"):
		return "You can check the latest status of your report on the My Reports screen. Each update is recorded with a timestamp."
	case strings.Contains(lower, "water") || strings.Contains(lower, "sewerage"):
		return "Water and sewerage issues are handled by WASA. Filing a report under the WASA category routes it to them directly."
	case strings.Contains(lower, "electricity") || strings.Contains(lower, "power") || strings.Contains(lower, "outage"):
		return "Power supply issues are handled by IESCO. Filing a report under the IESCO category routes it to them directly."
	case strings.Contains(lower, "garbage") || strings.Contains(lower, "road") || strings.Contains(lower, "street"):
		return "Roads, street lights and waste collection fall under the Municipality category. File a report there and it will be forwarded."
	case strings.Contains(lower, "delete") || strings.Contains(lower, "withdraw"):
		return "A report can be withdrawn only while it is still Pending. Once it has been forwarded, please contact the assigned department."
	case strings.Contains(lower, "edit") || strings.Contains(lower, "change"):
		return "Pending, unassigned reports can be edited from the My Reports screen. After assignment the contents are locked."
	}

	h := fnv.New32a()
	_, _ = fmt.Fprint(h, lower)
	return fallbacks[int(h.Sum32())%len(fallbacks)]
}

// Greeting opens a conversation with the named support contact.
func Greeting(contactName string) string {
	return fmt.Sprintf("Hello! I'm %s. How can I help you with your civic issue today?", contactName)
}
