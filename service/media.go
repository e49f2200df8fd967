package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"Tube/config"
	"Tube/pkg/uid"
	"Tube/types"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

const mediaMaxSize int64 = 500 << 20

// 上传层允许的媒体类型。缩略图走 image/*,本体走 video/*
var allowedMedia = map[string]string{
	"video/mp4":        ".mp4",
	"video/webm":       ".webm",
	"video/quicktime":  ".mov",
	"image/jpeg":       ".jpg",
	"image/png":        ".png",
	"application/ogg":  ".ogv",
	"video/x-matroska": ".mkv",
}

var _ IMediaService = (*MediaService)(nil)

type IMediaService interface {
	UploadMedia(ctx context.Context, userID string, header *multipart.FileHeader) (*types.UploadMediaResponse, error)
	Delete(ctx context.Context, objectKey string) error
}

type MediaService struct {
	Client     *oss.Client
	BucketName string
	PublicBase string
}

func NewMediaService(client *oss.Client, cfg *config.OssConfig) IMediaService {
	return &MediaService{
		Client:     client,
		BucketName: cfg.Bucket,
		PublicBase: fmt.Sprintf("https://%s.%s/", cfg.Bucket, cfg.Endpoint),
	}
}

// UploadMedia 接收表单上传的视频/缩略图,MIME 与大小校验通过后写入 OSS,
// 返回访问 URL 和给 Video.MediaData 用的元信息 JSON
func (s *MediaService) UploadMedia(ctx context.Context, userID string, header *multipart.FileHeader) (*types.UploadMediaResponse, error) {
	if header == nil {
		return nil, fmt.Errorf("missing media file")
	}
	// header.Size 不可信,只做第一道拦截
	if header.Size <= 0 || header.Size > mediaMaxSize {
		return nil, fmt.Errorf("media size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	// MIME 校验(读前 512 bytes 嗅探)
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedMedia[contentType]
	if !ok {
		return nil, fmt.Errorf("unsupported media type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	objectKey := fmt.Sprintf("video/%s/%s%s",
		time.Now().Format("2006/01/02"),
		uid.NewID(),
		ext,
	)

	limited := io.LimitReader(seeker, mediaMaxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return nil, err
	}

	// object_key 留在元信息里,删除视频时据此清理 OSS 对象
	meta, _ := json.Marshal(map[string]any{
		"object_key":  objectKey,
		"size":        header.Size,
		"mime":        contentType,
		"uploaded_by": userID,
		"uploaded_at": time.Now().Format(time.RFC3339),
	})

	return &types.UploadMediaResponse{
		ObjectKey: objectKey,
		URL:       s.PublicBase + objectKey,
		MediaData: string(meta),
	}, nil
}

func (s *MediaService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}
