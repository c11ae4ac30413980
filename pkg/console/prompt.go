package console

import (
	"strings"

	"github.com/arthur-debert/prettiprint/pkg/style"
)

// Prompts stay interactive at every verbosity: a suppressed prompt could
// not return a meaningful value, so the gate does not apply here.

func (c *Console) promptText(message, suffix string) string {
	descriptor := c.resolver.Resolve("accent", "")
	return style.Compile(descriptor).Render(message+suffix) + " "
}

// Prompt asks for a line of free-text input.
func (c *Console) Prompt(message string) (string, error) {
	return c.input.ReadLine(c.promptText(message, ""))
}

// PromptSecret asks for a line without echoing it back where the
// terminal allows; the "(hidden)" suffix tells the user what to expect.
func (c *Console) PromptSecret(message string) (string, error) {
	return c.input.ReadSecret(c.promptText(message, " (hidden)"))
}

// Confirm asks a yes/no question. An empty answer picks defaultYes;
// otherwise y, yes, true and 1 mean yes.
func (c *Console) Confirm(message string, defaultYes bool) (bool, error) {
	hint := " [y/N]"
	if defaultYes {
		hint = " [Y/n]"
	}

	answer, err := c.input.ReadLine(c.promptText(message, hint))
	if err != nil {
		return false, err
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return defaultYes, nil
	}
	switch answer {
	case "y", "yes", "true", "1":
		return true, nil
	default:
		return false, nil
	}
}
