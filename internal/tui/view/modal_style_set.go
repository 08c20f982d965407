package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	MetaStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	KeyStyle          lipgloss.Style
	WeekdayStyle      lipgloss.Style
	WeekendStyle      lipgloss.Style
}

// ResultStyles returns the modal styles needed for the apply result.
func (s ModalStyleSet) ResultStyles() ResultStyles {
	return ResultStyles{
		MetaStyle:         s.MetaStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		BodyStyle:         s.BodyStyle,
		WeekdayStyle:      s.WeekdayStyle,
		WeekendStyle:      s.WeekendStyle,
	}
}

// HelpStyles returns the modal styles needed for the key help.
func (s ModalStyleSet) HelpStyles() HelpStyles {
	return HelpStyles{
		KeyStyle:  s.KeyStyle,
		BodyStyle: s.BodyStyle,
	}
}
