package entity

// FunctionCall is the accumulated tool-call signal assembled from streamed
// fragments within a single turn. Name and Arguments grow by concatenation
// as fragments arrive; the whole value is reset at the start of every turn.
type FunctionCall struct {
	// ID is the call identifier assigned by the completion service.
	ID string `json:"id,omitempty"`
	// Name is the tool name to invoke.
	Name string `json:"name"`
	// Arguments is the JSON text of the tool arguments.
	Arguments string `json:"arguments"`
}

// Empty reports whether no callable tool was named. Accumulated argument
// text alone does not make a call.
func (fc *FunctionCall) Empty() bool {
	return fc == nil || fc.Name == ""
}

// ToolInvocation records one completed tool dispatch for transcripts.
type ToolInvocation struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
	Result    string `json:"result"`
}
