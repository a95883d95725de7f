package thread

const inputMaxHeight = 6
const inputPadding = 1

func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}

	inputWidth := m.width - inputPadding
	if inputWidth < 1 {
		inputWidth = 1
	}
	m.input.SetWidth(inputWidth)
	lineCount := m.input.LineCount()
	if lineCount < 1 {
		lineCount = 1
	}
	if lineCount > inputMaxHeight {
		lineCount = inputMaxHeight
	}
	m.input.SetHeight(lineCount)
	inputHeight := m.input.Height() + 2

	statusHeight := 1
	m.viewport.Width = m.width
	m.viewport.Height = m.height - inputHeight - statusHeight
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.refreshViewport(false)
}
