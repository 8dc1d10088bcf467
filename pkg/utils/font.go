package utils

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 字体源只解析一次，不同字号共用
var (
	fontOnce      sync.Once
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
	fontErr       error
)

// loadFontSources 解析内置的 Go 字体
// 项目不附带 TTF 资源，使用 golang.org/x/image 自带的字体
func loadFontSources() {
	regularSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if fontErr != nil {
		fontErr = fmt.Errorf("无法创建常规字体源: %w", fontErr)
		return
	}
	boldSource, fontErr = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if fontErr != nil {
		fontErr = fmt.Errorf("无法创建粗体字体源: %w", fontErr)
	}
}

// LoadFont 返回指定字号的常规字体
func LoadFont(size float64) (*text.GoTextFace, error) {
	fontOnce.Do(loadFontSources)
	if fontErr != nil {
		return nil, fontErr
	}
	return &text.GoTextFace{
		Source:    regularSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// LoadBoldFont 返回指定字号的粗体字体
func LoadBoldFont(size float64) (*text.GoTextFace, error) {
	fontOnce.Do(loadFontSources)
	if fontErr != nil {
		return nil, fontErr
	}
	return &text.GoTextFace{
		Source:    boldSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}, nil
}

// FontCache 按字号缓存字体 face，避免每帧创建
type FontCache struct {
	bold  bool
	faces map[float64]*text.GoTextFace
}

// NewFontCache 创建字体缓存
func NewFontCache(bold bool) *FontCache {
	return &FontCache{
		bold:  bold,
		faces: make(map[float64]*text.GoTextFace),
	}
}

// Face 返回指定字号的字体；加载失败时返回 nil
func (fc *FontCache) Face(size float64) *text.GoTextFace {
	if face, ok := fc.faces[size]; ok {
		return face
	}
	var face *text.GoTextFace
	var err error
	if fc.bold {
		face, err = LoadBoldFont(size)
	} else {
		face, err = LoadFont(size)
	}
	if err != nil {
		return nil
	}
	fc.faces[size] = face
	return face
}
