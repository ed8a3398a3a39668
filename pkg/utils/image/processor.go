package image

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"

	"github.com/chai2010/webp"
)

// ProcessImage yüklenen resmi decode edip quality 85 ile yeniden encode eder.
// GIF dosyaları animasyon karelerini korumak için olduğu gibi geçer.
func ProcessImage(file *multipart.FileHeader) (*bytes.Buffer, string, error) {
	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("could not open file: %v", err)
	}
	defer src.Close()

	// GIF'i yeniden encode etme; image/gif sadece ilk kareyi yazar
	if file.Header.Get("Content-Type") == "image/gif" {
		buf := new(bytes.Buffer)
		if _, err := io.Copy(buf, src); err != nil {
			return nil, "", fmt.Errorf("could not read file: %v", err)
		}
		return buf, "image/gif", nil
	}

	img, format, err := image.Decode(src)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %v", err)
	}

	buf := new(bytes.Buffer)

	switch format {
	case "jpeg":
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: 85})
	case "png":
		err = png.Encode(buf, img)
	case "webp":
		err = webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85})
	default:
		return nil, "", fmt.Errorf("unsupported image format: %s", format)
	}

	if err != nil {
		return nil, "", fmt.Errorf("could not encode image: %v", err)
	}

	contentType := fmt.Sprintf("image/%s", format)

	return buf, contentType, nil
}
