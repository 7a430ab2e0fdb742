package bot

import (
	"strings"
)

const helpText = `I relay messages between you and your family's companion device.

/connect <code> - pair with a device using the code on its screen
/alias <code or alias> <name> - name a paired device
/send <alias> <text> - send a message to the device
/m <alias> <text> - shorthand for /send
/disconnect <alias> - remove a pairing
/help - show this message`

// splitAliasAndText separates the alias head of a command's arguments from
// the free-text remainder. ok is false when either part is missing.
func splitAliasAndText(args string) (alias, text string, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(args), " ", 2)
	if len(parts) < 2 {
		return "", "", false
	}

	alias = parts[0]
	text = strings.TrimSpace(parts[1])
	if alias == "" || text == "" {
		return "", "", false
	}

	return alias, text, true
}

// displayName builds the requester name shown on the device, preferring the
// full name over the handle.
func displayName(firstName, lastName, username string) string {
	name := strings.TrimSpace(firstName + " " + lastName)
	if name != "" {
		return name
	}
	if username != "" {
		return username
	}

	return "A family member"
}
