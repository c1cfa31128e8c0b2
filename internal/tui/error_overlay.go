package tui

// errorOverlayModel is the modal box shown over the editor when an export,
// assistant, or clipboard operation fails. It blocks input until dismissed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Ошибка\n\n" + m.message + "\n\nenter / esc закрыть"
	return overlayBoxStyle.Render(content)
}
