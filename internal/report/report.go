// Package report renders leader command outcomes as localized replies.
package report

import (
	"fmt"

	"github.com/lazygod321/rustplusplus/internal/entities"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Reply is the user-facing form of an outcome.
type Reply struct {
	OK      bool
	Code    entities.ReasonCode
	Title   string
	Message string
	Member  *entities.Member
}

// Reporter localizes outcomes using the built-in message catalog.
type Reporter struct {
	catalog *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
}

// New builds a Reporter that falls back to defaultLocale.
func New(defaultLocale string) (*Reporter, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	tags := []language.Tag{fallback}
	for tag := range messages {
		if tag != fallback {
			tags = append(tags, tag)
		}
	}
	if _, ok := messages[fallback]; !ok {
		return nil, fmt.Errorf("no messages for default locale %s", fallback)
	}

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("set %s message %s: %w", tag, key, err)
			}
		}
	}

	return &Reporter{
		catalog: b,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Render localizes out for the languages listed in an Accept-Language value.
func (r *Reporter) Render(acceptLanguage string, out entities.Outcome, title string) Reply {
	p := message.NewPrinter(r.match(acceptLanguage), message.Catalog(r.catalog))

	reply := Reply{OK: out.OK(), Code: out.Reason, Title: title, Member: out.Member}
	switch {
	case out.OK():
		reply.Message = p.Sprintf(keyTransferred, out.Member.Name)
	case out.Reason == entities.ReasonLeaderNotEligible && out.Detail == "":
		reply.Message = p.Sprintf(keyNobodyPaired)
	case out.Reason == entities.ReasonSessionUnavailable, out.Reason == entities.ReasonFeatureDisabled:
		reply.Message = p.Sprintf(reasonKeys[out.Reason])
	default:
		reply.Message = p.Sprintf(reasonKeys[out.Reason], out.Detail)
	}
	return reply
}

func (r *Reporter) match(acceptLanguage string) language.Tag {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, idx, _ := r.matcher.Match(tags...)
	return r.tags[idx]
}
