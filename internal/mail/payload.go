package mail

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// maxPayloadSize bounds decompressed report payloads. Reports are
// typically a few KB; anything beyond this is not a report we accept.
const maxPayloadSize = 20 * 1024 * 1024

// ExtractPayload walks attachments in listed order and returns the
// first candidate report payload as UTF-8 XML text:
//
//   - *.xml is passed through
//   - *.xml.gz and *.gz are gzip-decompressed
//   - *.zip is not a candidate and is skipped
//
// A corrupt gzip candidate is skipped and extraction continues. The
// second return value is false when no attachment qualifies, which is
// the expected outcome for the bulk of inbound mail and not an error.
func ExtractPayload(attachments []AttachmentPart) ([]byte, bool) {
	for _, att := range attachments {
		name := strings.ToLower(att.Filename)

		switch {
		case strings.HasSuffix(name, ".zip"):
			continue
		case strings.HasSuffix(name, ".xml"):
			return att.Bytes, true
		case strings.HasSuffix(name, ".gz"):
			xml, err := gunzip(att.Bytes)
			if err != nil {
				log.WithError(err).WithField("filename", att.Filename).
					Debug("Skipping corrupt gzip attachment")
				continue
			}
			return xml, true
		}
	}
	return nil, false
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, maxPayloadSize))
	if err != nil {
		return nil, err
	}
	return out, nil
}
