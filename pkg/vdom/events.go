package vdom

// event creates an EventHandler for the given event name.
func event(name, action string) EventHandler {
	return EventHandler{Event: "on" + name, Action: action}
}

// OnClick dispatches action when the element is clicked.
func OnClick(action string) EventHandler { return event("click", action) }

// OnChange dispatches action when the element value changes.
func OnChange(action string) EventHandler { return event("change", action) }
