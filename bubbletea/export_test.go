package bubbletea

import "github.com/fwojciec/lessonmark"

// BlockSeparator exports blockSeparator for testing.
func BlockSeparator(prev, curr MessageBlock) string {
	return blockSeparator(prev, curr)
}

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// Reconcile exports reconcile for testing.
func Reconcile(existing, incoming []lessonmark.ChatMessage) []lessonmark.ChatMessage {
	return reconcile(existing, incoming)
}

// TerminalSafe exports terminalSafe for testing.
func TerminalSafe(s string) string {
	return terminalSafe(s)
}
