package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	LabelFont *text.GoTextFace
	SmallFont *text.GoTextFace
	TitleFont *text.GoTextFace
)

func init() {
	regular := loadFontSource(goregular.TTF)
	bold := loadFontSource(gobold.TTF)

	LabelFont = &text.GoTextFace{
		Source: regular,
		Size:   24,
	}
	SmallFont = &text.GoTextFace{
		Source: regular,
		Size:   16,
	}
	TitleFont = &text.GoTextFace{
		Source: bold,
		Size:   48,
	}
}

func loadFontSource(ttf []byte) *text.GoTextFaceSource {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return fontSource
}
