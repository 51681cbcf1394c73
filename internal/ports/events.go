package ports

// Trigger names the host event that asked for a reconciliation cycle.
type Trigger string

const (
	// TriggerStartup runs the first cycle after the host comes up.
	TriggerStartup Trigger = "startup"
	// TriggerConfigurationChanged fires when any store document changes.
	TriggerConfigurationChanged Trigger = "configuration-changed"
	// TriggerWorkspaceFoldersChanged fires when folders are opened or closed.
	TriggerWorkspaceFoldersChanged Trigger = "workspace-folders-changed"
	// TriggerActiveEditorChanged fires when another document becomes active.
	TriggerActiveEditorChanged Trigger = "active-editor-changed"
	// TriggerDocumentChanged fires when the active document is edited.
	TriggerDocumentChanged Trigger = "document-changed"
)
