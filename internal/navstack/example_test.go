package navstack_test

import (
	"fmt"

	"github.com/atomicstack/menu-stack/internal/navstack"
	"github.com/atomicstack/menu-stack/internal/panel"
)

type backdrop struct{}

func (backdrop) SetVisible(visible bool) { fmt.Println("backdrop visible:", visible) }

func Example() {
	stack := navstack.New(nil, backdrop{})
	stack.Subscribe(navstack.EventStackEnded, func() { fmt.Println("stack ended") })

	stack.Push(panel.Template{Kind: "main"})
	settings := stack.Push(panel.Template{Kind: "settings"})
	stack.Push(panel.Template{Kind: "audio"})
	fmt.Println(stack.Kinds())

	stack.Remove(settings)
	fmt.Println(stack.Kinds(), stack.Peek().State())

	stack.Pop()
	stack.Pop()
	// Output:
	// backdrop visible: true
	// [main settings audio]
	// [main audio] open
	// backdrop visible: false
	// stack ended
}
