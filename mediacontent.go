package promostandards

import (
	"context"
	"time"

	"github.com/kbukum/promostandards/soap"
	"github.com/kbukum/promostandards/validation"
)

// Media types accepted by GetMediaContent.
const (
	MediaTypeImage    = "Image"
	MediaTypeVideo    = "Video"
	MediaTypeAudio    = "Audio"
	MediaTypeDocument = "Document"
)

var mediaTypes = []string{MediaTypeImage, MediaTypeVideo, MediaTypeAudio, MediaTypeDocument}

var mediaContentService = service{
	name:            "MediaContent",
	urlKey:          "media_content_service_url",
	namespace:       "http://www.promostandards.org/WSDL/MediaService/1.0.0/",
	sharedNamespace: "http://www.promostandards.org/WSDL/MediaService/1.0.0/SharedObjects/",
	version:         "1.1.0",
}

var (
	opMediaContent = mediaContentService.operation("getMediaContent",
		"wsVersion", "id", "password", "cultureName", "mediaType", "productId", "partId", "classType")
	opMediaDateModified = mediaContentService.operation("getMediaDateModified",
		"wsVersion", "id", "password", "cultureName", "changeTimeStamp")
)

// MediaContent calls the Media Content service.
type MediaContent struct {
	r *requester
}

// GetMediaContent returns the media of a product. mediaType is one of the
// MediaType constants.
func (m *MediaContent) GetMediaContent(ctx context.Context, productID, mediaType string, params Params) (Result, error) {
	if appErr := validation.New().
		OneOf("mediaType", mediaType, mediaTypes).
		Validate(); appErr != nil {
		return nil, appErr
	}
	return m.call(ctx, opMediaContent, Params{"productId": productID, "mediaType": mediaType}, params)
}

// GetMediaDateModified lists products whose media changed since the given
// time.
func (m *MediaContent) GetMediaDateModified(ctx context.Context, since time.Time, params Params) (Result, error) {
	return m.call(ctx, opMediaDateModified, Params{"changeTimeStamp": since}, params)
}

func (m *MediaContent) call(ctx context.Context, op soap.Operation, fields, params Params) (Result, error) {
	return m.r.invoke(ctx, mediaContentService, m.r.settings.mediaContentServiceURL, op, fields, params)
}
