// Package assets provides embedded prompt templates.
//
// Templates live as text files under prompts/ and are embedded at compile
// time, keeping prompt copy editable without touching Go code.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed prompts/strategy.txt
var strategyText string

//go:embed prompts/social.txt
var socialText string

//go:embed prompts/trends.txt
var trendsText string

var (
	strategyTmpl = template.Must(template.New("strategy").Parse(strategyText))
	socialTmpl   = template.Must(template.New("social").Parse(socialText))
	trendsTmpl   = template.Must(template.New("trends").Parse(trendsText))
)

// StrategyParams fills the strategy document prompt.
type StrategyParams struct {
	BrandName string
	Goals     string
}

// SocialParams fills the social post drafting prompt.
type SocialParams struct {
	Platform       string
	BrandName      string
	Hook           string
	TargetAudience string
}

// TrendsParams fills the grounded trend search prompt.
type TrendsParams struct {
	Platform       string
	BrandName      string
	TargetAudience string
}

// RenderStrategy builds the strategy generation prompt.
func RenderStrategy(p StrategyParams) (string, error) {
	return render(strategyTmpl, p)
}

// RenderSocial builds the social post drafting prompt.
func RenderSocial(p SocialParams) (string, error) {
	return render(socialTmpl, p)
}

// RenderTrends builds the trend search prompt.
func RenderTrends(p TrendsParams) (string, error) {
	return render(trendsTmpl, p)
}

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
