package service

// NotificationKind classifies a [Notification] for presentation.
type NotificationKind int

const (
	NotificationInfo NotificationKind = iota
	NotificationAdded
	NotificationUpdated
	NotificationDeleted
	NotificationError
)

type Notification struct {
	Kind    NotificationKind
	Message string
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

// Client notification texts.
const (
	msgNoteAdded        = "Note added successfully."
	msgNoteUpdated      = "Note updated successfully."
	msgNoteDeleted      = "Note deleted successfully."
	msgNotePinUpdated   = "Note updated successfully."
	msgFailedToFetch    = "Failed to fetch notes"
	msgFailedToDelete   = "Failed to delete note"
	msgFailedToUpdate   = "Failed to update note"
	msgSearchFailed     = "Search failed"
	msgUnexpectedFailed = "An unexpected error happened. Please try again."
)
