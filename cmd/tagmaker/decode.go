package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagmaker/pkg/tag"
)

// elementJSON is the --json description of a decoded element.
type elementJSON struct {
	Tag         string     `json:"tag"`
	Content     string     `json:"content"`
	SelfClosing bool       `json:"selfClosing"`
	Attributes  []attrJSON `json:"attributes"`
}

type attrJSON struct {
	Key      string `json:"key"`
	Value    string `json:"value,omitempty"`
	Isolated bool   `json:"isolated,omitempty"`
}

func decodeCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		escape bool
	)

	cmd := &cobra.Command{
		Use:   "decode <html>",
		Short: "Parse a single HTML tag",
		Long: `Parse a single literal HTML tag and print it back in canonical form.

The decoder is lenient: it reads the first tag, at most one level of
content and space-separated attributes. Text without a tag is rejected.

Examples:
  tagmaker decode '<input type="checkbox" value="Brazil" checked />'
  tagmaker decode '<a href="/home" class="nav">Home</a>' --json`,
		Args: cobra.ExactArgs(1),
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			el, err := a.maker.DecodeContext(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !asJSON {
				return a.print(cmd, el, escape)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(describe(el))
		}),
	}

	cmd.Flags().BoolVarP(&asJSON, "json", "j", false, "Print the element as JSON")
	cmd.Flags().BoolVarP(&escape, "escape", "e", false, "Escape attribute values and content")

	return cmd
}

func describe(el *tag.Element) elementJSON {
	out := elementJSON{
		Tag:         el.Tag(),
		Content:     el.Content(),
		SelfClosing: el.IsSelfClosing(),
		Attributes:  []attrJSON{},
	}
	el.Attributes().Each(func(attr tag.Attr) bool {
		out.Attributes = append(out.Attributes, attrJSON{
			Key:      attr.Key,
			Value:    attr.Value,
			Isolated: attr.Isolated,
		})
		return true
	})
	return out
}
