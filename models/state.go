package models

// ScriptState is the lightweight server-side state descriptor of a
// script: enough to detect divergence without downloading source text.
type ScriptState struct {
	Name string `json:"name"`
	Hash string `json:"hash"`
}
