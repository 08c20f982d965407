package view

// ResultFooter renders the footer for the apply result modal.
func ResultFooter(styles ModalStyles) string {
	return RenderModalButtonsCompact(styles, "[y] Copy", "[c] Clear", "[Esc] Close")
}

// HelpFooter renders the footer for the help modal.
func HelpFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[Esc] Close")
}
