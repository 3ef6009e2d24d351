// Package bmp writes framebuffers as 24-bit uncompressed Windows bitmaps.
package bmp

import (
	"bufio"
	"encoding/binary"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	xbmp "golang.org/x/image/bmp"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	bitsPerPixel   = 24
	bytesPerPixel  = bitsPerPixel / 8

	// 72 DPI
	pixelsPerMeter = 2835
)

// Source is anything holding packed 0x00RRGGBB pixels, row-major from the top-left corner
type Source interface {
	Width() int
	Height() int
	Buffer() []uint32
}

type fileHeader struct {
	Signature  [2]byte
	FileSize   uint32
	Reserved1  uint16
	Reserved2  uint16
	DataOffset uint32
}

type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	ImageSize       uint32
	XPelsPerMeter   int32
	YPelsPerMeter   int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// rowSize is the scanline length in bytes, padded to a multiple of 4
func rowSize(width int) int {
	return (width*bytesPerPixel + 3) &^ 3
}

// Encode writes src to w as a BMP file: headers, then BGR scanlines bottom row first
func Encode(w io.Writer, src Source) error {
	var (
		width  = src.Width()
		height = src.Height()
		pixels = src.Buffer()
		stride = rowSize(width)
	)
	if width <= 0 || height <= 0 {
		return errors.Errorf("[Encode] invalid dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return errors.Errorf("[Encode] buffer holds %d pixels, want %d", len(pixels), width*height)
	}

	imageSize := stride * height
	fh := fileHeader{
		Signature:  [2]byte{'B', 'M'},
		FileSize:   uint32(fileHeaderSize + infoHeaderSize + imageSize),
		DataOffset: fileHeaderSize + infoHeaderSize,
	}
	ih := infoHeader{
		Size:          infoHeaderSize,
		Width:         int32(width),
		Height:        int32(height), // positive: bottom-up rows
		Planes:        1,
		BitCount:      bitsPerPixel,
		ImageSize:     uint32(imageSize),
		XPelsPerMeter: pixelsPerMeter,
		YPelsPerMeter: pixelsPerMeter,
	}
	if err := binary.Write(w, binary.LittleEndian, fh); err != nil {
		return errors.Wrap(err, "[Encode] failed to write file header")
	}
	if err := binary.Write(w, binary.LittleEndian, ih); err != nil {
		return errors.Wrap(err, "[Encode] failed to write info header")
	}

	row := make([]byte, stride)
	for y := height - 1; y >= 0; y-- {
		for x, px := range pixels[y*width : (y+1)*width] {
			row[x*bytesPerPixel] = byte(px)         // blue
			row[x*bytesPerPixel+1] = byte(px >> 8)  // green
			row[x*bytesPerPixel+2] = byte(px >> 16) // red
		}
		if _, err := w.Write(row); err != nil {
			return errors.Wrapf(err, "[Encode] failed to write row %d", y)
		}
	}
	return nil
}

// Save encodes src into the file at path, replacing it if it exists.
// The bitmap is written to a temporary file beside path and renamed into place,
// so a failed save leaves no partial file and keeps any previous one intact.
func Save(src Source, path string) (err error) {
	file, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return errors.Wrapf(err, "[Save] failed to create file: %+v", path)
	}
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(file.Name())
		}
	}()

	bw := bufio.NewWriter(file)
	if err = Encode(bw, src); err != nil {
		return errors.Wrapf(err, "[Save] failed to encode file: %+v", path)
	}
	if err = bw.Flush(); err != nil {
		return errors.Wrapf(err, "[Save] failed to write file: %+v", path)
	}
	if err = file.Chmod(0o644); err != nil {
		return errors.Wrapf(err, "[Save] failed to set permissions: %+v", path)
	}
	if err = file.Close(); err != nil {
		return errors.Wrapf(err, "[Save] failed to close file: %+v", path)
	}
	if err = os.Rename(file.Name(), path); err != nil {
		return errors.Wrapf(err, "[Save] failed to rename file: %+v", path)
	}
	return nil
}

// Load decodes the bitmap at path
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to open file: %+v", path)
	}
	defer file.Close()

	img, err := xbmp.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to decode file: %+v", path)
	}
	return img, nil
}
