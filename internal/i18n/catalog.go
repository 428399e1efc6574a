package i18n

import "golang.org/x/text/language"

// supported lists the catalog languages; the first one is the fallback.
var supported = []language.Tag{language.English, language.French}

var translations = map[language.Tag]map[string]string{
	language.English: {
		KeySkip:                 "Skip",
		KeyUnskip:               "Unskip",
		KeyReskip:               "Reskip",
		KeyMute:                 "Mute",
		KeyUnmute:               "Unmute",
		KeySkipped:              "Skipped",
		KeyMuted:                "Muted",
		KeySkipPrompt:           "Skip?",
		KeyNoticeTitle:          "Segment Skipped",
		KeyVoted:                "Thanks for voting!",
		KeyOpenCategoryWikiPage: "Open the wiki page for this category",
		KeyContinueVoting:       "Continue Voting",
		KeyUnsubmitted:          "Unsubmitted",
		KeyHide:                 "Never show this again",
		KeySubmit:               "Submit",
		KeyCopyAndDownvote:      "Copy and downvote",
		KeyIncorrectCategory:    "Change category",
		KeyUpvoteInfo:           "Upvote this submission",
		KeyDownvoteInfo:         "Report this submission as incorrect",
		KeyCopyDownvoteInfo:     "Downvote and create a local copy to resubmit",
		KeyHitGoBack:            "Hit unskip to go back",

		"category_sponsor":              "Sponsor",
		"category_selfpromo":            "Unpaid/Self Promotion",
		"category_selfpromo_short":      "Self Promotion",
		"category_exclusive_access":     "Exclusive Access",
		"category_interaction":          "Interaction Reminder (Subscribe)",
		"category_interaction_short":    "Interaction Reminder",
		"category_intro":                "Intermission/Intro Animation",
		"category_intro_short":          "Intermission",
		"category_outro":                "Endcards/Credits",
		"category_preview":              "Preview/Recap",
		"category_music_offtopic":       "Music: Non-Music Section",
		"category_music_offtopic_short": "Non-Music",
		"category_filler":               "Filler Tangent/Jokes",
		"category_filler_short":         "Filler",
		"category_poi_highlight":        "Highlight",
		"category_chapter":              "Chapter",
	},
	language.French: {
		KeySkip:                 "Passer",
		KeyUnskip:               "Revenir",
		KeyReskip:               "Repasser",
		KeyMute:                 "Couper le son",
		KeyUnmute:               "Rétablir le son",
		KeySkipped:              "Passé",
		KeyMuted:                "Son coupé",
		KeySkipPrompt:           "Passer ?",
		KeyNoticeTitle:          "Segment passé",
		KeyVoted:                "Merci d'avoir voté !",
		KeyOpenCategoryWikiPage: "Ouvrir la page wiki de cette catégorie",
		KeyContinueVoting:       "Continuer à voter",
		KeyUnsubmitted:          "Non soumis",
		KeyHide:                 "Ne plus afficher",
		KeySubmit:               "Soumettre",
		KeyCopyAndDownvote:      "Copier et voter contre",
		KeyIncorrectCategory:    "Changer de catégorie",
		KeyUpvoteInfo:           "Voter pour cette soumission",
		KeyDownvoteInfo:         "Signaler cette soumission comme incorrecte",
		KeyCopyDownvoteInfo:     "Voter contre et créer une copie locale",
		KeyHitGoBack:            "Appuyez sur revenir pour reculer",

		"category_sponsor":        "Sponsor",
		"category_selfpromo":      "Autopromotion",
		"category_interaction":    "Rappel d'interaction",
		"category_intro":          "Entracte/Intro",
		"category_outro":          "Générique de fin",
		"category_preview":        "Aperçu/Récapitulatif",
		"category_music_offtopic": "Musique : hors musique",
		"category_filler":         "Digression",
		"category_poi_highlight":  "Moment fort",
		"category_chapter":        "Chapitre",
	},
}
