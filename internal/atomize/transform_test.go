package atomize

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yacobolo/atomize/internal/engine"
)

func cardStyle() StyleMap {
	return StyleMap{
		{Property: "display", Value: "flex"},
		{Property: "display", Value: "-webkit-box"},
		{Property: "gap", Value: "var(--spacing-xs, 4px)"},
		{Property: "padding-left", Value: "8px /* spacing/sm */"},
		{Property: "border-width", Value: "1px"},
		{Property: "line-height", Value: "normal"},
		{Property: "text-transform", Value: "uppercase"},
		{Property: "align-self", Value: "stretch"},
		{Property: "font-feature-settings", Value: "'tnum'"},
	}
}

func TestTransformUnocss(t *testing.T) {
	result := Transform(cardStyle(), DefaultConfig())

	require.Equal(t, "flex gap-4px pl-2 border-4 lh-normal uppercase [font-feature-settings:'tnum']", result.Uno)
	require.Equal(t, "flex gap-4px pl-2 border-4", result.UnoMini)

	require.Len(t, result.Skipped, 2)
	assert.Equal(t, "display: -webkit-box", result.Skipped[0].Declaration)
	assert.Equal(t, `class "-webkit-box" filtered`, result.Skipped[0].Reason)
	assert.Equal(t, "align-self: stretch", result.Skipped[1].Declaration)
}

func TestTransformCSSCode(t *testing.T) {
	style := cardStyle()
	result := Transform(style, DefaultConfig())

	lines := strings.Split(result.CSSCode, "\n")
	require.Len(t, lines, len(style))
	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, style[i].Property+": "), line)
		assert.True(t, strings.HasSuffix(line, ";"), line)
		assert.NotContains(t, line, "/*")
	}
	assert.Equal(t, "padding-left: 8px;", lines[3])
	assert.Equal(t, "gap: var(--spacing-xs, 4px);", lines[2])
}

func TestTransformTailwind(t *testing.T) {
	style := StyleMap{
		{Property: "letter-spacing", Value: "-0.32px"},
		{Property: "font-style", Value: "normal"},
		{Property: "color", Value: "rgba(41, 37, 36, 0.50)"},
		{Property: "font-weight", Value: "600"},
		{Property: "font-family", Value: `"SF Pro", sans-serif`},
		{Property: "flex", Value: "1 0 0"},
		{Property: "padding-left", Value: "8px"},
	}

	result := Transform(style, Config{Engine: EngineTailwind, Prefix: "tw-"})

	require.Equal(t, "tw-tracking-[-0.32px] tw-text-[#29252480] tw-font-[600] tw-font-SF-Pro tw-flex-1 tw-pl-[8px]", result.Uno)
	require.Equal(t, "tw-tracking-[-0.32px] tw-text-[#29252480] tw-font-[600] tw-flex-1 tw-pl-[8px]", result.UnoMini)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, ReasonNoMatch, result.Skipped[0].Reason)
}

func TestTransformPrefixesEveryClass(t *testing.T) {
	style := StyleMap{{Property: "padding", Value: "8px 16px"}}

	result := Transform(style, Config{Engine: EngineUnocss, Prefix: "u-"})
	require.Equal(t, "u-py-2 u-px-4", result.Uno)
}

func TestTransformRem(t *testing.T) {
	style := StyleMap{{Property: "gap", Value: "16px"}}

	result := Transform(style, Config{Engine: EngineUnocss, IsRem: true})
	require.Equal(t, "gap-1rem", result.Uno)
}

func TestTransformMiniExclusions(t *testing.T) {
	style := StyleMap{
		{Property: "font-family", Value: "Inter"},
		{Property: "text-transform", Value: "uppercase"},
		{Property: "font-feature-settings", Value: "'tnum'"},
		{Property: "line-height", Value: "normal"},
		{Property: "font-style", Value: "normal"},
		{Property: "background", Value: "url(a.png)"},
		{Property: "display", Value: "block"},
	}

	result := Transform(style, DefaultConfig())
	require.Equal(t, "block", result.UnoMini)
	require.Contains(t, result.Uno, "font-not-italic")
	require.Contains(t, result.Uno, "bg-[url(a.png)]")
}

func TestTransformSentinelFiltering(t *testing.T) {
	stub := engine.Func{EngineName: "stub", Fn: func(declaration string, _ bool) []string {
		switch {
		case strings.HasPrefix(declaration, "a:"):
			return []string{"class-a"}
		case strings.HasPrefix(declaration, "b:"):
			return []string{"undefined"}
		case strings.HasPrefix(declaration, "c:"):
			return []string{""}
		case strings.HasPrefix(declaration, "d:"):
			return nil
		case strings.HasPrefix(declaration, "e:"):
			return []string{"self-stretch"}
		}
		return []string{"class-z"}
	}}

	style := StyleMap{
		{Property: "a", Value: "1"},
		{Property: "b", Value: "1"},
		{Property: "c", Value: "1"},
		{Property: "d", Value: "1"},
		{Property: "e", Value: "1"},
		{Property: "z", Value: "1"},
	}

	for _, cfg := range []Config{{Engine: EngineUnocss, Prefix: "u-"}, {Engine: EngineTailwind, Prefix: "u-"}} {
		t.Run(cfg.Engine, func(t *testing.T) {
			result := Transform(style, cfg, WithEngine(stub))
			require.Equal(t, "u-class-a u-class-z", result.Uno)
			require.Equal(t, "u-class-a u-class-z", result.UnoMini)
			require.NotContains(t, result.Uno, "undefined")
			require.NotContains(t, result.Uno, "  ")
			require.Len(t, result.Skipped, 4)
		})
	}
}

func TestTransformIdempotent(t *testing.T) {
	style := cardStyle()
	snapshot := append(StyleMap(nil), style...)

	first := Transform(style, DefaultConfig())
	second := Transform(style, DefaultConfig())

	require.Equal(t, first, second)
	require.Equal(t, snapshot, style)
}

func TestTransformConcurrent(t *testing.T) {
	style := cardStyle()
	want := Transform(style, DefaultConfig())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, Transform(style, DefaultConfig()))
		}()
	}
	wg.Wait()
}

func TestTransformEmpty(t *testing.T) {
	result := Transform(nil, DefaultConfig())
	require.Equal(t, Result{}, result)
}

func TestTransformUnknownEngineFallsBack(t *testing.T) {
	style := StyleMap{{Property: "gap", Value: "8px"}}
	require.Equal(t, "gap-8px", Transform(style, Config{Engine: "windi"}).Uno)
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	Transform(StyleMap{{Property: "display", Value: "flex"}}, DefaultConfig(), WithLogger(zap.New(core)))

	entries := logs.FilterMessage("converted declaration").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "display: flex", fields["declaration"])
	assert.Equal(t, "flex", fields["class"])
	assert.Equal(t, "unocss", fields["engine"])
}

func TestExplain(t *testing.T) {
	explanations := Explain(cardStyle(), DefaultConfig())
	require.Len(t, explanations, 9)

	assert.Equal(t, Explanation{
		Property:    "gap",
		Declaration: "gap: 4px",
		Class:       "gap-4px",
		Category:    CategoryLayout,
		InMini:      true,
	}, explanations[2])

	assert.Equal(t, "pl-2", explanations[3].Class)
	assert.Equal(t, CategorySpacing, explanations[3].Category)

	// filtered sentinel
	assert.Empty(t, explanations[1].Class)
	assert.False(t, explanations[1].InMini)

	// excluded from mini by class
	assert.Equal(t, "lh-normal", explanations[5].Class)
	assert.False(t, explanations[5].InMini)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Config{}.Validate())
	require.NoError(t, Config{Engine: "Tailwind"}.Validate())
	require.ErrorIs(t, Config{Engine: "windi"}.Validate(), ErrUnknownEngine)
}

func TestConvert(t *testing.T) {
	style := StyleMap{{Property: "display", Value: "flex"}}
	c := Convert("card.css", style, DefaultConfig())

	require.Equal(t, "card.css", c.Source)
	require.Equal(t, "flex", c.Result.Uno)
	require.Equal(t, "display: flex;", c.Result.CSSCode)
}
