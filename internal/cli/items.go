package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piwi3910/PickPack/internal/importer"
	"github.com/piwi3910/PickPack/internal/model"
	"github.com/piwi3910/PickPack/internal/project"
	"github.com/spf13/pflag"
)

var errNoItems = errors.New("no items: pass identifiers, --file or --template")

// itemSource holds the flags that name where an order's items come from.
type itemSource struct {
	file     string
	template string
}

func (s *itemSource) register(fs *pflag.FlagSet) {
	fs.StringVarP(&s.file, "file", "f", "", "CSV or Excel item list")
	fs.StringVarP(&s.template, "template", "t", "", "saved order (name or ID)")
}

// collect gathers identifiers from the template, the file and the
// positional arguments, in that order. It also returns the template's box,
// if one was used.
func (a *app) collect(s itemSource, args []string) ([]string, model.BoxSize, error) {
	var (
		ids []string
		box model.BoxSize
	)

	if s.template != "" {
		store, err := project.LoadWithBuiltins(a.templatePath())
		if err != nil {
			return nil, "", fmt.Errorf("failed to load templates: %w", err)
		}
		t := findTemplate(&store, s.template)
		if t == nil {
			return nil, "", fmt.Errorf("template %q not found", s.template)
		}
		ids = append(ids, t.Items...)
		box = t.Box
	}

	if s.file != "" {
		res := importer.ImportFile(s.file)
		for _, w := range res.Warnings {
			a.logger.Warn("import", "file", s.file, "warning", w)
		}
		if len(res.Errors) > 0 {
			return nil, "", fmt.Errorf("failed to import %s: %s", s.file, strings.Join(res.Errors, "; "))
		}
		ids = append(ids, res.Items...)
	}

	ids = append(ids, args...)
	if len(ids) == 0 {
		return nil, "", errNoItems
	}
	return ids, box, nil
}
