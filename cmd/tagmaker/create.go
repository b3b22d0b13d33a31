package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagmaker"
	"github.com/vango-dev/tagmaker/internal/errors"
	"github.com/vango-dev/tagmaker/pkg/tag"
)

func createCmd(a *app) *cobra.Command {
	var (
		content  string
		attrs    []string
		isolated []string
		escape   bool
	)

	cmd := &cobra.Command{
		Use:   "create <rule>",
		Short: "Build an element from a rule",
		Long: `Build an element from a rule and print it as HTML.

--content replaces the rule's {content}. --attr and --isolated are
applied after the rule, so they win over its id, classes and brackets.

Examples:
  tagmaker create 'p.lead{Hello}'
  tagmaker create 'a.btn#link' --content 'Click here' --attr href=#
  tagmaker create 'input[type=checkbox]' --isolated checked`,
		Args: cobra.ExactArgs(1),
		RunE: a.withMetrics(func(cmd *cobra.Command, args []string) error {
			overrides, err := parseAttrFlags(attrs, isolated)
			if err != nil {
				return err
			}

			opts := []tagmaker.CreateOption{tagmaker.WithAttributes(overrides)}
			if cmd.Flags().Changed("content") {
				opts = append(opts, tagmaker.WithContent(content))
			}

			el, err := a.maker.CreateContext(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}

			return a.print(cmd, el, escape)
		}),
	}

	cmd.Flags().StringVar(&content, "content", "", "Content replacing the rule's {content}")
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "Valued attribute override as key=value (repeatable)")
	cmd.Flags().StringArrayVarP(&isolated, "isolated", "i", nil, "Isolated attribute override (repeatable)")
	cmd.Flags().BoolVarP(&escape, "escape", "e", false, "Escape attribute values and content")

	return cmd
}

// parseAttrFlags turns --attr and --isolated values into attributes,
// valued ones first.
func parseAttrFlags(valued, isolated []string) (*tag.Attributes, error) {
	attrs := &tag.Attributes{}
	for _, kv := range valued {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, errors.New(errors.CodeInvalidArgument).
				WithSubject("--attr " + kv).
				WithSuggestion("Use key=value, or --isolated for attributes without a value")
		}
		attrs.Set(strings.TrimSpace(key), value)
	}
	for _, key := range isolated {
		if strings.TrimSpace(key) == "" {
			return nil, errors.New(errors.CodeInvalidArgument).WithSubject("--isolated")
		}
		attrs.SetIsolated(strings.TrimSpace(key))
	}
	return attrs, nil
}

// print renders el with the Maker's renderer, or with escaping forced on
// when escape is set.
func (a *app) print(cmd *cobra.Command, el *tag.Element, escape bool) error {
	renderer := a.maker.Renderer()
	if escape {
		renderer = tag.NewRenderer(tag.RendererConfig{Escape: true})
	}

	html, err := renderer.RenderToString(el)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
	return err
}
