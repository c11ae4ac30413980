package main

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/prettiprint/pkg/console"
	"github.com/arthur-debert/prettiprint/pkg/errors"
	"github.com/arthur-debert/prettiprint/pkg/redact"
)

// newDemoCmd walks through every output primitive, one section per
// feature area.
func newDemoCmd(newConsole func() (*console.Console, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a full feature walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newConsole()
			if err != nil {
				return err
			}

			c.Header("prettiprint — Full Feature Demo")
			c.Event("Starting demo run", console.LevelInfo)

			demoMessages(c)
			if err := demoStructure(c); err != nil {
				return err
			}
			if err := demoData(c); err != nil {
				return err
			}
			demoSecrets(c)
			demoProgress(c)
			if err := demoPrompts(c); err != nil {
				return err
			}
			demoExceptions(c)
			if err := demoThemes(c); err != nil {
				return err
			}

			c.Event("Demo run complete", console.LevelSuccess)
			c.Success("Done.")
			return nil
		},
	}
}

func demoMessages(c *console.Console) {
	c.Header("Messages & Events")
	c.Success("Operation completed successfully.")
	c.Info("Fetching configuration from remote store...")
	c.Warning("API rate limit approaching (80%).")
	c.Error("Failed to connect to primary database.")
	c.Event("Log line at INFO level", console.LevelInfo)
	c.Event("A successful operation event", console.LevelSuccess)
	c.Event("Low disk space on node-7", console.LevelWarning)
	c.Event("Dead-letter queue growing rapidly", console.LevelError)
	c.Event("This is a DEBUG detail (only at -vv)", console.LevelDebug)
}

func demoStructure(c *console.Console) error {
	c.Header("Structure: Panel, Markdown, Code, Rule")
	c.Panel("This message sits inside the default panel.", console.PanelOptions{Title: "Default Panel"})
	c.Panel("This message is blue on white inside a bold red panel.", console.PanelOptions{
		Title:       "Panel with style & border overrides",
		Style:       "blue on white",
		BorderStyle: "bold red",
	})
	c.Panel("This message sits inside a magenta, double box panel.", console.PanelOptions{
		Title:       "Panel with box override",
		BorderStyle: "magenta",
		Box:         "double",
	})
	c.Panel("This message sits inside an expanded and padded panel.", console.PanelOptions{
		Title:   "Panel with padding & expand",
		Padding: 1,
		Expand:  true,
	})

	if err := c.Markdown("# Markdown Title\n" +
		"- Bulleted item\n" +
		"- **Bold** and *italics*\n" +
		"> Blockquote\n\n" +
		"```python\n" +
		"def hello(name: str) -> str:\n" +
		"    return f\"Hello, {name}!\"\n" +
		"```"); err != nil {
		return err
	}

	if err := c.Code(
		"import math\n\narea = math.pi * (10 ** 2)\nprint(area)",
		"python",
		console.CodeOptions{Title: "Syntax-Highlighted Code"},
	); err != nil {
		return err
	}

	cmdLine := `PGPASSWORD="` + redact.MaskDefault("SuperSecretP@$$") + `" ` +
		`psql -U aCoolUsername -h psqldb-pretti-printclust-prettiprint.dbuser -p 1234 -d PrettiPrintDatabase ` +
		`-v ON_ERROR_STOP=1 -f "/mnt/path/to/some-random/sql-file/temp.sql"`
	if err := c.Code(cmdLine, "bash", console.CodeOptions{Title: "Wrapped Code", Wrap: true}); err != nil {
		return err
	}

	c.Rule("Adding 5 spaces between this horizontal rule and the next", console.RuleOptions{})
	c.Spacer(5)
	c.Rule("End of structure demo", console.RuleOptions{})
	return nil
}

func demoData(c *console.Console) error {
	c.Header("Data: Table, Dictionary, JSON, Tree")

	headers := []string{"Key", "Value"}
	rows := [][]string{{"ENV", "prod"}, {"REGION", "us-east-1"}, {"REPLICAS", "3"}}
	c.Table(headers, rows, console.TableOptions{Title: "Simple Table"})

	conf := map[string]interface{}{
		"env":       "prod",
		"region":    "us-east-1",
		"replicas":  3,
		"feature_x": true,
	}
	c.Dictionary(conf, console.DictionaryOptions{Title: "Key/Value Dictionary"})
	c.Dictionary(conf, console.DictionaryOptions{Title: "Shrunk Dictionary", Shrink: true})

	payload := map[string]interface{}{
		"status": "ok",
		"items":  []map[string]int{{"id": 1}, {"id": 2}},
		"meta":   map[string]int{"page": 1},
	}
	if err := c.JSON(payload, "JSON Payload"); err != nil {
		return err
	}

	nested := map[string]interface{}{
		"config": map[string]interface{}{
			"db":    map[string]interface{}{"host": "localhost", "port": 5432},
			"cache": map[string]interface{}{"enabled": true, "ttl": 600},
		},
		"services": []string{"auth", "payments", "search"},
	}
	c.Tree(nested, "Nested Structure")
	return nil
}

func demoSecrets(c *console.Console) {
	c.Header("Secrets & Key/Value")
	c.KeyValue("USER", "service_account", console.KeyValueOptions{})
	c.KeyValue("PASSWORD", "p@ssw0rd!", console.KeyValueOptions{Secret: true, Keep: 3})
}

func demoProgress(c *console.Console) {
	c.Header("Progress & Status")

	_ = c.WithStatus("Connecting to remote service...", func() error {
		time.Sleep(500 * time.Millisecond)
		return nil
	})

	tracker := c.Progress()
	tracker.AddTask("Uploading artifacts", 20)
	tracker.AddTask("Indexing search", 10)
	for i := 0; i < 20; i++ {
		tracker.Advance("Uploading artifacts", 1)
		tracker.Advance("Indexing search", 1)
		time.Sleep(40 * time.Millisecond)
	}
	tracker.Stop()
	c.Success("All tasks finished.")
}

func demoPrompts(c *console.Console) error {
	c.Header("Prompts (skipped if non-interactive)")
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		c.Warning("stdin is not a TTY; skipping interactive prompts.")
		return nil
	}

	name, err := c.Prompt("Enter your name")
	if err != nil {
		return err
	}
	proceed, err := c.Confirm("Proceed with deployment?", false)
	if err != nil {
		return err
	}
	c.Info("Hello, " + name + ". Proceed = " + map[bool]string{true: "yes", false: "no"}[proceed])
	return nil
}

func demoExceptions(c *console.Console) {
	c.Header("Exceptions")
	root := errors.New(errors.ErrInput, "index 5 out of range [0,3)")
	c.PrintException(errors.Wrap(root, errors.ErrInternal, "reading sample data"))
}

func demoThemes(c *console.Console) error {
	c.Header("Theme Switch")
	c.Info("Currently using theme: " + c.Theme())
	for _, name := range []string{"light", "mono", "dark"} {
		if err := c.SetTheme(name, nil); err != nil {
			return err
		}
		c.Info("Now using theme: " + name)
	}
	return nil
}
