package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

// Notifier delivers service notifications to the running program. Messages
// sent while no program is attached are dropped.
type Notifier struct {
	mu      sync.Mutex
	program *tea.Program
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Notify(note service.Notification) {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()

	if p != nil {
		p.Send(notificationMsg(note))
	}
}

func (n *Notifier) attach(p *tea.Program) {
	n.mu.Lock()
	n.program = p
	n.mu.Unlock()
}

type TUI struct {
	services  *service.ClientServices
	notifier  *Notifier
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, notifier *Notifier, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		notifier:  notifier,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run shows the UI until the user quits. With a restored session the notes
// page opens directly, otherwise the start menu does.
func (t *TUI) Run(ctx context.Context, session *models.Session) error {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
		pageNotes:    NewNotesModel(ctx, t.services.NoteService, t.services.AuthService),
	}

	startPage := pageMenu
	var startMsg tea.Msg
	if session != nil && !session.IsZero() {
		startPage = pageNotes
		startMsg = sessionStartedMsg{session: *session}
	}

	root := NewRootModel(pages, startPage, startMsg, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	t.notifier.attach(program)
	defer t.notifier.attach(nil)

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		t.logger.Err(err).Msg("tui stopped with error")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
