package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnocssConvert(t *testing.T) {
	e := NewUnocss()

	tests := []struct {
		name        string
		declaration string
		want        string
	}{
		{"display flex", "display: flex", "flex"},
		{"display none", "display: none", "hidden"},
		{"webkit box passes through", "display: -webkit-box", "-webkit-box"},
		{"flex column", "flex-direction: column", "flex-col"},
		{"gap px", "gap: 8px", "gap-8px"},
		{"gap two values", "gap: 4px 8px", "gap-y-4px gap-x-8px"},
		{"padding single", "padding: 8px", "p-8px"},
		{"padding two values", "padding: 8px 16px", "py-8px px-16px"},
		{"padding four values", "padding: 1px 2px 3px 4px", "pt-1px pr-2px pb-3px pl-4px"},
		{"padding left", "padding-left: 8px", "pl-8px"},
		{"negative margin", "margin-top: -4px", "-mt-4px"},
		{"margin auto", "margin-left: auto", "ml-auto"},
		{"width full", "width: 100%", "w-full"},
		{"width px", "width: 320px", "w-320px"},
		{"align self stretch", "align-self: stretch", "self-stretch"},
		{"justify between", "justify-content: space-between", "justify-between"},
		{"line height normal", "line-height: normal", "lh-normal"},
		{"line height number", "line-height: 1.5", "lh-1.5"},
		{"line height px", "line-height: 20px", "lh-20px"},
		{"font weight", "font-weight: 600", "font-600"},
		{"font weight keyword", "font-weight: bold", "font-bold"},
		{"font style normal", "font-style: normal", "font-not-italic"},
		{"font style italic", "font-style: italic", "font-italic"},
		{"font family", `font-family: "SF Pro Display", sans-serif`, "font-[SF_Pro_Display]"},
		{"font size", "font-size: 14px", "text-14px"},
		{"color hex", "color: #292524", "text-[#292524]"},
		{"color named", "color: white", "text-white"},
		{"background color", "background-color: #fff", "bg-[#fff]"},
		{"background url", "background: url(a.png) no-repeat", "bg-[url(a.png)_no-repeat]"},
		{"border shorthand", "border: 1px solid #e7e5e4", "border-1 border-solid border-[#e7e5e4]"},
		{"border none", "border: none", "border-0"},
		{"border side width", "border-left-width: 2px", "border-l-2"},
		{"border radius", "border-radius: 8px", "rounded-8px"},
		{"border radius full", "border-radius: 50%", "rounded-full"},
		{"border radius corners", "border-radius: 1px 2px 3px 4px", "rounded-tl-1px rounded-tr-2px rounded-br-3px rounded-bl-4px"},
		{"opacity", "opacity: 0.5", "op-50"},
		{"opacity precision", "opacity: 0.07", "op-7"},
		{"z index", "z-index: 10", "z-10"},
		{"negative z index", "z-index: -1", "-z-1"},
		{"flex one", "flex: 1", "flex-1"},
		{"flex grow", "flex-grow: 1", "flex-grow"},
		{"flex shrink zero", "flex-shrink: 0", "flex-shrink-0"},
		{"letter spacing", "letter-spacing: -0.32px", "tracking-[-0.32px]"},
		{"important stripped", "display: block !important", "block"},
		{"semicolon stripped", "display: grid;", "grid"},
		{"inset all", "inset: 0", "inset-0"},
		{"line clamp", "-webkit-line-clamp: 2", "line-clamp-2"},
		{"box shadow", "box-shadow: 0 1px 2px rgba(0, 0, 0, 0.05)", "shadow-[0_1px_2px_rgba(0,0,0,0.05)]"},
		{"backdrop blur", "backdrop-filter: blur(4px)", "backdrop-blur-[4px]"},
		{"aspect ratio", "aspect-ratio: 16 / 9", "aspect-[16/9]"},
		{"unknown property", "font-feature-settings: 'tnum' on", "[font-feature-settings:'tnum'_on]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, First(e.Convert(tt.declaration, false)))
		})
	}
}

func TestTailwindConvert(t *testing.T) {
	e := NewTailwind()

	tests := []struct {
		name        string
		declaration string
		want        string
	}{
		{"gap bracketed", "gap: 8px", "gap-[8px]"},
		{"padding two values", "padding: 8px 16px", "py-[8px] px-[16px]"},
		{"zero length", "margin: 0", "m-0"},
		{"width full", "width: 100%", "w-full"},
		{"border shorthand", "border: 1px solid #e7e5e4", "border-[1px] border-solid border-[#e7e5e4]"},
		{"line height", "line-height: 1.5", "leading-[1.5]"},
		{"line height normal", "line-height: normal", "leading-normal"},
		{"font weight", "font-weight: 500", "font-[500]"},
		{"font style normal", "font-style: normal", "not-italic"},
		{"flex grow", "flex-grow: 1", "grow"},
		{"opacity", "opacity: 0.5", "opacity-50"},
		{"rounded", "border-radius: 12px", "rounded-[12px]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, First(e.Convert(tt.declaration, false)))
		})
	}
}

func TestConvertRem(t *testing.T) {
	tests := []struct {
		name        string
		engine      Engine
		declaration string
		want        string
	}{
		{"unocss gap", NewUnocss(), "gap: 8px", "gap-0.5rem"},
		{"unocss padding", NewUnocss(), "padding: 4px 24px", "py-0.25rem px-1.5rem"},
		{"tailwind width", NewTailwind(), "width: 320px", "w-[20rem]"},
		{"percent untouched", NewUnocss(), "width: 50%", "w-50%"},
		{"letter spacing", NewTailwind(), "letter-spacing: 2px", "tracking-[0.125rem]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, First(tt.engine.Convert(tt.declaration, true)))
		})
	}
}

func TestConvertUntransformed(t *testing.T) {
	e := NewUnocss()

	t.Run("vendor prefix without rule", func(t *testing.T) {
		got := e.Convert("-moz-osx-font-smoothing: grayscale", false)
		require.Len(t, got, 2)
		assert.Equal(t, "", got[0])
		assert.Equal(t, "-moz-osx-font-smoothing: grayscale", got[1])
	})

	t.Run("webkit prefix falls back to arbitrary property", func(t *testing.T) {
		assert.Equal(t, "[-webkit-box-orient:vertical]", First(e.Convert("-webkit-box-orient: vertical", false)))
	})

	t.Run("malformed declaration", func(t *testing.T) {
		assert.Nil(t, e.Convert("display", false))
		assert.Nil(t, e.Convert("display:", false))
		assert.Equal(t, "", First(e.Convert(": flex", false)))
	})
}

func TestByName(t *testing.T) {
	e, err := ByName("Tailwind")
	require.NoError(t, err)
	assert.Equal(t, "tailwind", e.Name())

	e, err = ByName("unocss")
	require.NoError(t, err)
	assert.Equal(t, "unocss", e.Name())

	_, err = ByName("windi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: tailwind, unocss")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"tailwind", "unocss"}, Names())
}

func TestFunc(t *testing.T) {
	stub := Func{
		EngineName: "stub",
		Fn: func(declaration string, _ bool) []string {
			return []string{"x-" + declaration}
		},
	}

	assert.Equal(t, "stub", stub.Name())
	assert.Equal(t, "x-a", First(stub.Convert("a", false)))
	assert.Equal(t, "", First(nil))
}
