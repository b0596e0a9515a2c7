package render

// Element is a UI element produced by a Host. Text runs are elements too;
// hosts may ignore class and attribute calls on them.
type Element interface {
	AppendChild(child Element)
	SetAttribute(name, value string)
	AddClass(class string)
	RemoveClass(class string)
	HasClass(class string) bool
	SetText(text string)
}

// Container is the element a document renders into. The renderer owns it
// for the duration of a Render call.
type Container interface {
	Element
	Clear()
}

// Host creates elements. Any DOM-like tree satisfies it.
type Host interface {
	CreateElement(tag string) Element
	CreateText(text string) Element
}

// Classes names the CSS classes applied to syntax elements.
type Classes struct {
	Syntax  string `yaml:"syntax_class"`
	Visible string `yaml:"visible_class"`
	Hidden  string `yaml:"hidden_class"`
}

// DefaultClasses returns the classes used when none are configured.
func DefaultClasses() Classes {
	return Classes{
		Syntax:  "md-syntax",
		Visible: "md-syntax-visible",
		Hidden:  "md-syntax-hidden",
	}
}
