//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/pearify/chalk/pkg/chalk"
	"github.com/pearify/chalk/pkg/console"
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("chalk", js.FuncOf(renderFunc(false)))
	api.Set("big", js.FuncOf(renderFunc(true)))
	api.Set("Logger", js.FuncOf(newLogger))
	api.Set("bigText", js.FuncOf(bigText))
	api.Set("title", js.FuncOf(title))
	api.Set("shortcuts", js.FuncOf(shortcuts))
	js.Global().Set("Chalk", api)
	select {}
}

// renderFunc returns the JS-callable renderer.
// Usage: Chalk.chalk("bold.red", "a", "b") → ["%ca b", "font-weight:bold;color:#ff6b6b"]
//
// Spread the result into console.log. An invalid expression returns an Error
// instead of the pair.
func renderFunc(big bool) func(this js.Value, args []js.Value) any {
	return func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return newError("expected a style expression")
		}
		chain, err := chalk.Parse(args[0].String())
		if err != nil {
			return newError(err.Error())
		}
		texts := make([]string, 0, len(args)-1)
		for _, a := range args[1:] {
			texts = append(texts, a.String())
		}
		r := chain.Apply(texts...)
		if big {
			r = chain.BigApply(texts...)
		}
		return js.ValueOf([]any{r.Format, r.CSS})
	}
}

// newLogger builds a logger object bound to the browser console.
// Usage: const log = Chalk.Logger("net", "#4dabf7"); log.info("connected")
func newLogger(this js.Value, args []js.Value) any {
	name := argString(args, 0, "app")
	color := argString(args, 1, "")
	l := chalk.NewLogger(name, color, chalk.WithSink(console.NewBrowserSink()))

	obj := js.Global().Get("Object").New()
	bind := func(method string, fn func(...any)) {
		obj.Set(method, js.FuncOf(func(this js.Value, args []js.Value) any {
			fn(jsArgs(args)...)
			return nil
		}))
	}
	bind("log", l.Log)
	bind("info", l.Info)
	bind("warn", l.Warn)
	bind("error", l.Error)
	bind("debug", l.Debug)
	obj.Set("errorCustomFmt", js.FuncOf(func(this js.Value, args []js.Value) any {
		l.ErrorCustomFmt(argString(args, 0, ""), jsArgs(args[min(1, len(args)):])...)
		return nil
	}))
	obj.Set("name", l.Name())
	obj.Set("color", l.Color())
	return obj
}

// bigText prints a banner. Usage: Chalk.bigText("Pearify", "#94d05f", true)
func bigText(this js.Value, args []js.Value) any {
	shadow := true
	if len(args) > 2 && args[2].Type() == js.TypeBoolean {
		shadow = args[2].Bool()
	}
	chalk.BigText(console.NewBrowserSink(), argString(args, 0, ""), argString(args, 1, ""), shadow)
	return nil
}

// title returns console arguments that print a single badge.
// Usage: console.log(...Chalk.title("#ff75c3", "Section"))
func title(this js.Value, args []js.Value) any {
	return js.ValueOf(chalk.Title(argString(args, 0, "white"), argString(args, 1, "")))
}

// shortcuts lists the shortcut names in registration order.
func shortcuts(this js.Value, args []js.Value) any {
	infos := chalk.Shortcuts()
	names := make([]any, len(infos))
	for i, s := range infos {
		names[i] = s.Name
	}
	return js.ValueOf(names)
}

func argString(args []js.Value, i int, fallback string) string {
	if i >= len(args) || args[i].IsUndefined() || args[i].IsNull() {
		return fallback
	}
	return args[i].String()
}

func jsArgs(args []js.Value) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func newError(msg string) js.Value {
	return js.Global().Get("Error").New(msg)
}
