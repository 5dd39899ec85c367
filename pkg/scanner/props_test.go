package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractProps_Interface(t *testing.T) {
	src := `
interface ButtonProps {
  label: string
  onClick?: () => void
  disabled?: boolean
}
export function Button(props: ButtonProps) {}
`
	props := extractProps(src, FrameworkReact)
	assert.Equal(t, []string{"label", "onClick", "disabled"}, props)
}

func TestExtractProps_TypeAlias(t *testing.T) {
	src := `
type CardProps = {
  title: string
  footer?: string
}
export const Card = (p: CardProps) => null
`
	props := extractProps(src, FrameworkReact)
	assert.Equal(t, []string{"title", "footer"}, props)
}

func TestExtractProps_OptionalMarkerStripped(t *testing.T) {
	src := "interface XProps { a?: number }\nexport function X() {}"
	assert.Equal(t, []string{"a"}, extractProps(src, FrameworkReact))
}

func TestExtractProps_NoPropsDeclaration(t *testing.T) {
	assert.Nil(t, extractProps("export function Button() {}", FrameworkReact))
}

func TestExtractProps_NonReactFrameworksReturnEmpty(t *testing.T) {
	src := "interface NavProps { items: string[] }"
	for _, fw := range []Framework{FrameworkVue, FrameworkAngular, FrameworkSvelte, FrameworkVanilla} {
		assert.Nil(t, extractProps(src, fw), "no extraction rules for %s", fw)
	}
}
