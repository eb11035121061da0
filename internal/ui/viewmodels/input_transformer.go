package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// InputMode represents which widget has focus
type InputMode int

const (
	InputModeSearch InputMode = iota
	InputModeList
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      InputMode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      InputModeSearch,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode InputMode) {
	it.mode = mode
}

// GetInputText returns the search box content for the view
func (it *InputTransformer) GetInputText() string {
	return it.textInput.View()
}

// GetInputModeString returns the string representation of the input mode
func (it *InputTransformer) GetInputModeString() string {
	switch it.mode {
	case InputModeSearch:
		return "search"
	case InputModeList:
		return "list"
	default:
		return ""
	}
}
