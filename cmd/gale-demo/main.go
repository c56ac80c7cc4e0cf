// Command gale-demo builds a small interface and drives it with a scripted
// event stream. It exists to exercise the library end to end without a
// window backend; a real application would feed HandleEvent from its
// windowing layer instead.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/image/math/f32"

	"github.com/go-gale/gale/pkg/errors"
	"github.com/go-gale/gale/pkg/graphics"
	"github.com/go-gale/gale/pkg/input"
	"github.com/go-gale/gale/pkg/ui"
	"github.com/go-gale/gale/pkg/widgets"
)

// appState is the application context threaded through user callbacks.
type appState struct {
	clicks int
}

func main() {
	bindingsPath := flag.String("bindings", "bindings.yaml", "path to the input bindings file")
	flag.Parse()

	errors.SetHandler(&errors.LogHandler{Verbose: true})

	bindings, err := input.LoadBindings(*bindingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gale-demo:", err)
		os.Exit(1)
	}
	handler := input.NewHandler[string, string](bindings)

	u := ui.New[string, appState](graphics.NewRect(0, 0, 800, 600))
	widgets.RegisterDefaults(u)

	frame := widgets.NewFrame[string](ui.NewIdentity("main", 1), graphics.NewRect(100, 100, 300, 200), 0)
	frame.Title = "gale demo"
	frame.Movable = true
	frameHandle := u.InsertWidget(frame)

	button := widgets.NewButton[string](ui.NewIdentity("ok", 2), graphics.NewRect(120, 160, 80, 24), 0, "OK", "ok-pressed")
	buttonHandle := u.InsertWidget(button)
	u.SetParent(buttonHandle, frameHandle)

	check := widgets.NewCheckbox[string](ui.NewIdentity("verbose", 3), graphics.NewRect(120, 200, 140, 16), 0, "Verbose", false)
	checkHandle := u.InsertWidget(check)
	u.SetParent(checkHandle, frameHandle)

	caption := widgets.NewLabel[string](ui.NewIdentity("hint", 4), graphics.NewRect(120, 130, 200, 16), 0, "drag me by the body")
	captionHandle := u.InsertWidget(caption)
	u.SetParent(captionHandle, frameHandle)

	u.RegisterUser(ui.CallbackKey{Kind: widgets.KindButton, Event: ui.EventMousePress},
		ui.UserMousePressFunc[string, appState](func(w *ui.Widget[string], btn input.MouseButton, pressed bool, mods input.Modifiers, cmds *ui.CommandQueue, data *appState) []string {
			if pressed {
				return nil
			}
			data.clicks++
			if b, ok := w.Control.(*widgets.Button[string]); ok {
				return []string{b.Press}
			}
			return nil
		}))

	// A scripted session: click the button, toggle the checkbox, then drag
	// the frame by its body.
	script := []input.Event{
		input.PointerMoveEvent{Position: f32.Vec2{160, 170}},
		input.ButtonEvent{Button: input.ButtonLeft, Pressed: true},
		input.ButtonEvent{Button: input.ButtonLeft, Pressed: false},
		input.PointerMoveEvent{Position: f32.Vec2{125, 205}},
		input.ButtonEvent{Button: input.ButtonLeft, Pressed: true},
		input.ButtonEvent{Button: input.ButtonLeft, Pressed: false},
		input.PointerMoveEvent{Position: f32.Vec2{250, 150}},
		input.ButtonEvent{Button: input.ButtonLeft, Pressed: true},
		input.PointerMoveEvent{Position: f32.Vec2{280, 180}},
		input.ButtonEvent{Button: input.ButtonLeft, Pressed: false},
	}

	state := &appState{}
	for _, ev := range script {
		handler.Update(ev)
		for _, msg := range u.HandleEvent(ev, state) {
			fmt.Println("message:", msg)
		}
	}
	handler.EndFrame()

	fmt.Println("clicks:", state.clicks)
	fmt.Println("checkbox:", check.Checked())
	fmt.Printf("frame origin: (%.0f, %.0f)\n", frame.Bounds().X, frame.Bounds().Y)
	if down := handler.IsActionDown("jump"); down {
		fmt.Println("jump is held")
	}
}
