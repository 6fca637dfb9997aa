package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"photoorder/internal/domain"
)

// Reporter forwards copy progress into a running program as messages.
// CopyFinished is not forwarded: the StartCopy command returns CopyDoneMsg.
type Reporter struct {
	Send func(tea.Msg)
}

func (r Reporter) send(msg tea.Msg) {
	if r.Send != nil {
		r.Send(msg)
	}
}

func (r Reporter) CopyStarted(inputFile, outputDir string, folders int) {
	r.send(CopyStartedMsg{Folders: folders})
}

func (r Reporter) FolderStarted(index int, path string) {
	r.send(FolderStartedMsg{Index: index, Path: path})
}

func (r Reporter) FolderSkipped(folder domain.FolderReport) {
	r.send(FolderSkippedMsg{Folder: folder})
}

func (r Reporter) FileProcessed(res domain.FileResult) {
	r.send(FileProcessedMsg{Result: res})
}

func (r Reporter) FolderFinished(folder domain.FolderReport) {
	r.send(FolderFinishedMsg{Folder: folder})
}

func (r Reporter) CopyFinished(domain.CopyReport) {}
