// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package vimwiki

import (
	"bytes"
	"strings"
)

// tryLink matches a "[[...]]" link, a "{{...}}" transclusion, or a bare
// URL. An unterminated "[[" becomes a MalformedLink diagnostic and is
// passed through as literal text for the "[[" itself,
// letting the parser continue from just past it.
func (ip *inlineParser) tryLink(base int, data []byte, pos int, depth int) (InlineElement, int, bool) {
	switch {
	case hasPrefixAt(data, pos, "[["):
		return ip.tryBracketLink(base, data, pos, depth)
	case hasPrefixAt(data, pos, "{{"):
		return ip.tryTransclusion(base, data, pos, depth)
	default:
		return ip.tryRawURL(base, data, pos)
	}
}

func (ip *inlineParser) tryBracketLink(base int, data []byte, pos int, depth int) (InlineElement, int, bool) {
	rel := bytes.Index(data[pos+2:], []byte("]]"))
	if rel < 0 {
		// No closing "]]" on this span: malformed, not a link at all.
		// Let the caller's default text-accumulation path consume the
		// "[[" one rune at a time; report it once here.
		ip.addDiag(MalformedLink, base, pos, pos+2, `"[[" has no matching "]]"`)
		return nil, 0, false
	}
	bodyStart := pos + 2
	bodyEnd := pos + 2 + rel
	n := bodyEnd + 2 - pos
	body := data[bodyStart:bodyEnd]
	if bytes.ContainsAny(body, "\n\r") {
		return nil, 0, false
	}

	pathPart := body
	var descPart []byte
	hasDesc := false
	if bar := bytes.IndexByte(body, '|'); bar >= 0 {
		pathPart = body[:bar]
		descPart = body[bar+1:]
		hasDesc = true
	}

	pathStr := string(bytes.TrimSpace(pathPart))
	variant, path := classifyLinkPath(pathStr)
	var anchor []string
	if h := strings.IndexByte(path, '#'); h >= 0 {
		anchor = strings.Split(path[h+1:], "#")
		path = path[:h]
	}

	elem := &Link{
		inlineBase: inlineBase{ip.region(base, pos, pos+n)},
		Variant:    variant,
		Path:       path,
		Anchor:     anchor,
	}
	if hasDesc {
		elem.HasDesc = true
		descOffset := bodyStart + bytes.IndexByte(body, '|') + 1
		trimmedDesc := bytes.TrimSpace(descPart)
		if looksLikeURL(string(trimmedDesc)) {
			elem.Description = LinkDescription{Kind: LinkDescriptionURI, URI: string(trimmedDesc)}
		} else {
			elem.Description = LinkDescription{
				Kind: LinkDescriptionText,
				Text: ip.parseSpan(base+descOffset, descPart, depth+1),
			}
		}
	}
	return elem, n, true
}

// classifyLinkPath determines a bracket link's [LinkVariant] from its
// path text. "wiki\d+:" and "wn.NAME:" prefixes are checked first; none
// of the generic scheme/"//"/"www." rules below would match them, so the
// order only makes the precedence explicit.
func classifyLinkPath(path string) (LinkVariant, string) {
	if i := strings.IndexByte(path, ':'); i > 0 && strings.HasPrefix(path[:i], "wiki") {
		if _, ok := atoiDigits(path[4:i]); ok {
			return LinkIndexedInterwiki, path
		}
	}
	if strings.HasPrefix(path, "wn.") {
		if i := strings.IndexByte(path, ':'); i > len("wn.") && isInterwikiName(path[len("wn."):i]) {
			return LinkNamedInterwiki, path
		}
	}
	switch {
	case strings.HasPrefix(path, "diary:"):
		return LinkDiary, strings.TrimPrefix(path, "diary:")
	case strings.HasPrefix(path, "local:"), strings.HasPrefix(path, "file:"):
		return LinkExternalFile, path
	case strings.HasPrefix(path, "//"):
		return LinkExternalFile, "file:/" + path
	case strings.HasPrefix(path, "www."):
		return LinkRaw, "https://" + path
	default:
		return LinkWiki, path
	}
}

func atoiDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func isInterwikiName(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !isWordByte(byte(c)) {
			return false
		}
	}
	return true
}

func looksLikeURL(s string) bool {
	for _, scheme := range []string{"http://", "https://", "ftp://", "file://", "mailto:"} {
		if strings.HasPrefix(s, scheme) {
			return true
		}
	}
	return false
}

// tryTransclusion matches "{{url}}", "{{url|description}}", or
// "{{url|description|key="value" ...}}".
func (ip *inlineParser) tryTransclusion(base int, data []byte, pos int, depth int) (InlineElement, int, bool) {
	rel := bytes.Index(data[pos+2:], []byte("}}"))
	if rel < 0 {
		return nil, 0, false
	}
	bodyStart := pos + 2
	bodyEnd := pos + 2 + rel
	n := bodyEnd + 2 - pos
	body := string(data[bodyStart:bodyEnd])
	if strings.ContainsAny(body, "\n\r") {
		return nil, 0, false
	}
	parts := strings.Split(body, "|")
	elem := &Link{
		inlineBase: inlineBase{ip.region(base, pos, pos+n)},
		Variant:    LinkTransclusion,
		Path:       strings.TrimSpace(parts[0]),
	}
	if len(parts) > 1 {
		elem.HasDesc = true
		if desc := strings.TrimSpace(parts[1]); looksLikeURL(desc) {
			elem.Description = LinkDescription{Kind: LinkDescriptionURI, URI: desc}
		} else {
			descOffset := bodyStart + len(parts[0]) + 1
			elem.Description = LinkDescription{
				Kind: LinkDescriptionText,
				Text: ip.parseSpan(base+descOffset, []byte(parts[1]), depth+1),
			}
		}
	}
	if len(parts) > 2 {
		props := make(map[string]string)
		parsePreformattedMetadata(strings.Join(parts[2:], ";"), props)
		if len(props) > 0 {
			elem.Properties = props
		}
	}
	return elem, n, true
}

// rawURLSchemes are the schemes vimwiki auto-links as a bare Raw link in
// running text.
var rawURLSchemes = []string{"http://", "https://", "ftp://", "file://", "local://", "mailto:"}

// tryRawURL matches a bare "scheme:..." URL, or a "www."-prefixed bare
// hostname (virtual "https://" prefix), outside of brackets: vimwiki
// auto-links URLs that appear as plain text.
func (ip *inlineParser) tryRawURL(base int, data []byte, pos int) (InlineElement, int, bool) {
	rest := data[pos:]
	matched := ""
	for _, s := range rawURLSchemes {
		if bytes.HasPrefix(rest, []byte(s)) {
			matched = s
			break
		}
	}
	virtualPrefix := ""
	if matched == "" && bytes.HasPrefix(rest, []byte("www.")) {
		matched = "www."
		virtualPrefix = "https://"
	}
	if matched == "" {
		return nil, 0, false
	}
	end := len(rest)
	for i, b := range rest {
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == ')' || b == ']' {
			end = i
			break
		}
	}
	if end <= len(matched) {
		return nil, 0, false
	}
	n := end
	elem := &Link{
		inlineBase: inlineBase{ip.region(base, pos, pos+n)},
		Variant:    LinkRaw,
		Path:       virtualPrefix + string(rest[:end]),
	}
	return elem, n, true
}
