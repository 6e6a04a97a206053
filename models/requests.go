package models

// Wire payloads exchanged with the remote script service.

type UploadScriptRequest struct {
	Name       string `json:"name"`
	SourceCode string `json:"source_code"`
}

type ScriptStatesRequest struct {
	Names  []string `json:"names"`
	Length int      `json:"length"`
}

type ScriptStatesResponse struct {
	States []ScriptState `json:"states"`
}

type ScriptNamesResponse struct {
	Names []string `json:"names"`
}

type DownloadScriptResponse struct {
	Name       string `json:"name"`
	SourceCode string `json:"source_code"`
}

type RunScriptResponse struct {
	Output string `json:"output"`
}
