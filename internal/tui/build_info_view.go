package tui

import (
	"github.com/MKhiriev/go-notes-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := "Application: Notes Keeper\n" +
		"Version: " + info.BuildVersion() + "\n" +
		"Date:    " + info.BuildDate() + "\n" +
		"Commit:  " + info.BuildCommit()

	return renderPage("ABOUT", body, "esc: back")
}
