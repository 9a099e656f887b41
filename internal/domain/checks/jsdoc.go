package checks

import (
	"context"
	"fmt"
	"regexp"

	"github.com/plugforge/plugforge/internal/domain"
)

// JSDocCheck estimates documentation coverage of the main source file by
// comparing function declarations against JSDoc blocks. Pure text
// heuristic, best effort only.
type JSDocCheck struct{}

func NewJSDocCheck() *JSDocCheck { return &JSDocCheck{} }

func (c *JSDocCheck) Name() Name { return JSDoc }

var jsdocBlockRe = regexp.MustCompile(`/\*\*`)

func (c *JSDocCheck) Run(_ context.Context, cc domain.CheckContext, rs *domain.ResultSet) error {
	content, ok := readPluginFile(cc.PluginPath, mainSourceFile(cc.Config))
	if !ok {
		rs.AddWarning("Main source file not found; JSDoc check skipped")
		return nil
	}

	functions := len(functionDeclRe.FindAllString(content, -1)) +
		len(arrowConstRe.FindAllString(content, -1))
	blocks := len(jsdocBlockRe.FindAllString(content, -1))

	if functions == 0 {
		rs.AddWarning("No function declarations found to document")
		return nil
	}

	documented := blocks
	if documented > functions {
		documented = functions
	}
	ratio := float64(documented) / float64(functions)

	if ratio >= 0.8 {
		rs.AddPassed(fmt.Sprintf("JSDoc coverage looks good (%d of %d functions documented)", documented, functions))
	} else {
		rs.AddRecommendation(fmt.Sprintf("Document more functions with JSDoc (%d of %d covered)", documented, functions))
	}

	return nil
}
