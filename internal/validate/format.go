package validate

import (
	"strings"

	"github.com/avoronova/lessonsift/internal/model"
)

// issueMessages maps every issue type to user-facing guidance. Types not
// listed here fall back to a generic message, never a panic.
var issueMessages = map[model.IssueType]string{
	model.IssueInsufficientContent: "This page does not have enough text to build a lesson from.",
	model.IssueUnsupportedLanguage: "The page language is not supported or could not be identified reliably.",
	model.IssueSocialMediaContent:  "This page looks like a social media feed rather than an article.",
	model.IssueNavigationOnly:      "This page is mostly navigation links with little readable content.",
	model.IssueTooMuchAdvertising:  "This page contains too much promotional content.",
	model.IssueLowQuality:          "The content quality is below the recommended minimum for lessons.",
}

var recoveryOptions = map[model.IssueType][]string{
	model.IssueInsufficientContent: {
		"select and copy the article text manually",
		"open the full article instead of a preview or summary page",
	},
	model.IssueUnsupportedLanguage: {
		"choose a page written in a supported language",
		"set the lesson language manually if the detection is wrong",
	},
	model.IssueSocialMediaContent: {
		"open the linked article instead of the feed",
	},
	model.IssueNavigationOnly: {
		"navigate to a content page within this site",
	},
	model.IssueTooMuchAdvertising: {
		"use the site's reader or print view if one exists",
		"copy only the article body manually",
	},
	model.IssueLowQuality: {
		"pick a longer, better-structured article",
	},
}

const genericMessage = "The content could not be used for lesson generation."

// ErrorMessage formats the error-severity issues into one human-readable
// message. It is total: unknown issue types get the generic message.
func ErrorMessage(issues []model.ValidationIssue) string {
	var parts []string
	for _, issue := range issues {
		if issue.Severity != model.SeverityError {
			continue
		}
		if msg, ok := issueMessages[issue.Type]; ok {
			parts = append(parts, msg)
		} else {
			parts = append(parts, genericMessage)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ")
}

// RecoveryOptions returns deduplicated suggestions for every recoverable
// issue, in issue order.
func RecoveryOptions(issues []model.ValidationIssue) []string {
	seen := make(map[string]bool)
	var options []string
	for _, issue := range issues {
		if !issue.Recoverable {
			continue
		}
		for _, opt := range recoveryOptions[issue.Type] {
			if !seen[opt] {
				seen[opt] = true
				options = append(options, opt)
			}
		}
	}
	return options
}
