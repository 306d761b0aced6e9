package xmpmeta

import (
	"bytes"
	"compress/zlib"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strings"
)

// crsNamespace is the Camera Raw settings namespace used by Lightroom.
const crsNamespace = "http://ns.adobe.com/camera-raw-settings/1.0/"

// rdfNamespace is the RDF namespace wrapping XMP descriptions.
const rdfNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// zlibMagic marks the start of a zlib stream with default compression. Some
// catalog blobs carry a short header before it.
var zlibMagic = []byte{0x78, 0x9c}

// DecodeBlob decompresses a catalog XMP blob into its XML text. The blob may
// carry a short binary header before the zlib stream; decoding starts at the
// zlib magic when one is found.
func DecodeBlob(blob []byte) (string, error) {
	if len(blob) == 0 {
		return "", fmt.Errorf("empty xmp blob")
	}
	if idx := bytes.Index(blob, zlibMagic); idx > 0 {
		blob = blob[idx:]
	}
	r, err := zlib.NewReader(bytes.NewReader(blob))
	if err != nil {
		return "", fmt.Errorf("open xmp blob: %w", err)
	}
	defer r.Close()

	xmlBytes, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decompress xmp blob: %w", err)
	}
	return string(xmlBytes), nil
}

// ParseCRS extracts every camera-raw setting from an XMP document. Both
// attribute form (crs:Exposure2012="0.65" on rdf:Description) and element
// form (<crs:Exposure2012>0.65</crs:Exposure2012>) are handled; rdf:li list
// items under an element are joined with commas.
func ParseCRS(xmpXML string) (map[string]string, error) {
	settings := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(xmpXML))

	var crsElement string // name of the crs element currently open
	var liDepth int
	var liValues []string
	var text strings.Builder

	flush := func() {
		if crsElement == "" {
			return
		}
		if len(liValues) > 0 {
			settings[crsElement] = strings.Join(liValues, ",")
		} else if v := strings.TrimSpace(text.String()); v != "" {
			settings[crsElement] = v
		}
		crsElement = ""
		liValues = nil
		text.Reset()
	}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse xmp: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			for _, attr := range t.Attr {
				if attr.Name.Space == crsNamespace {
					settings[attr.Name.Local] = attr.Value
				}
			}
			switch {
			case t.Name.Space == crsNamespace:
				flush()
				crsElement = t.Name.Local
			case crsElement != "" && t.Name.Space == rdfNamespace && t.Name.Local == "li":
				liDepth++
			}
		case xml.CharData:
			if crsElement != "" {
				text.Write(t)
			}
		case xml.EndElement:
			switch {
			case t.Name.Space == rdfNamespace && t.Name.Local == "li" && liDepth > 0:
				liDepth--
				liValues = append(liValues, strings.TrimSpace(text.String()))
				text.Reset()
			case t.Name.Space == crsNamespace && t.Name.Local == crsElement:
				flush()
			}
		}
	}
	flush()
	return settings, nil
}

// Build renders a Lightroom-compatible XMP develop-settings fragment from a
// slider map. Keys are emitted in sorted order so the output is stable.
func Build(settings map[string]float64) string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var tags strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&tags, "    <crs:%s>%.4f</crs:%s>\n", k, settings[k], k)
	}

	return fmt.Sprintf(`<?xpacket begin="" id="W5M0MpCehiHzreSzNTczkc9d"?>
<x:xmpmeta xmlns:x="adobe:ns:meta/">
  <rdf:RDF xmlns:rdf="%s">
    <rdf:Description rdf:about=""
        xmlns:crs="%s">
%s    </rdf:Description>
  </rdf:RDF>
</x:xmpmeta>
<?xpacket end="w"?>
`, rdfNamespace, crsNamespace, tags.String())
}
