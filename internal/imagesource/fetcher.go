package imagesource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strings"

	// 比率算出のためのデコーダ登録
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"

	"ai-image-studio/internal/domain"
)

// ErrNotImage は取得したリソースが画像ではなかったことを示します。
var ErrNotImage = errors.New("provided source does not point to an image file")

// Fetcher はローカルアップロードとリモートURLの双方から
// 編集用の元画像 (domain.SourceImage) を生成する境界コンポーネントです。
type Fetcher struct {
	httpClient httpkit.ClientInterface
	// reader は gs:// URI の読み取りに使います。nil の場合 gs:// は拒否されます。
	reader remoteio.InputReader
}

// NewFetcher は依存関係を注入して Fetcher を初期化します。
// reader は任意（nil 許容）、httpClient は必須です。
func NewFetcher(httpClient httpkit.ClientInterface, reader remoteio.InputReader) (*Fetcher, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	return &Fetcher{httpClient: httpClient, reader: reader}, nil
}

// FromBytes はアップロードされたバイト列を検証して SourceImage に変換します。
// 申告された MIME タイプではなく内容の検出結果を信頼します。
func (f *Fetcher) FromBytes(data []byte) (*domain.SourceImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w (detected: %s)", ErrNotImage, mimeType)
	}

	return &domain.SourceImage{
		Data:     data,
		MimeType: mimeType,
		Ratio:    naturalRatio(data),
	}, nil
}

// FromURL はリモートURLから画像を取得します。http(s) は SSRF ガードを通し、
// gs:// は InputReader 経由で読み取ります。
// 失敗時はリモート側のアクセス制限（CORS等）が原因になり得る旨を含めて報告します。
func (f *Fetcher) FromURL(ctx context.Context, rawURL string) (*domain.SourceImage, error) {
	data, err := f.fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("URL에서 이미지를 가져올 수 없습니다. 원격 서버의 접근 제한(CORS 정책) 또는 잘못된 URL일 수 있습니다: %w", err)
	}

	src, err := f.FromBytes(data)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "remote image acquired", "url", rawURL, "mime_type", src.MimeType, "bytes", len(src.Data))
	return src, nil
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if strings.HasPrefix(rawURL, "gs://") {
		if f.reader == nil {
			return nil, fmt.Errorf("gs:// URI is not supported in this environment")
		}
		rc, err := f.reader.Open(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}

	if safe, err := isSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}
	return f.httpClient.FetchBytes(ctx, rawURL)
}

// naturalRatio は縦/横の自然比を返します。デコードできない形式は 0 とし、
// 呼び出し側で正方形フォールバックさせます。
func naturalRatio(data []byte) float64 {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width == 0 {
		return 0
	}
	return float64(cfg.Height) / float64(cfg.Width)
}
