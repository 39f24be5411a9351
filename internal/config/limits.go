package config

const (
	// MaxDumpLength is the maximum length for raw brain dump text.
	// Matches the 64KiB cap on the backing text column.
	MaxDumpLength = 65535

	// MaxIdeaInputLength is the maximum length for a raw idea description.
	MaxIdeaInputLength = 65535

	// MaxSectionsLength is the maximum length for a session's serialized
	// sections JSON. Oversized section lists are dropped, not truncated
	// mid-document.
	MaxSectionsLength = 65535

	// MaxTitleLength is the maximum length for session and idea titles.
	// Limited to 255 to fit in VARCHAR(255) and provide reasonable UX.
	MaxTitleLength = 255

	// MaxTaskTitleLength is the maximum length for task titles.
	MaxTaskTitleLength = 500

	// MaxDescriptionLength is the maximum length for task descriptions.
	MaxDescriptionLength = 5000

	// ListCap is the upper bound on records fetched per collection.
	// The analytics core must behave correctly up to this cap.
	ListCap = 1000

	// IdeaListCap is the upper bound on saved ideas fetched per request.
	IdeaListCap = 50

	// ActivityFeedLimit is the number of activity events in the recent feed.
	ActivityFeedLimit = 20

	// RecentItemsLimit is the number of recent sessions/ideas included in
	// dashboard stats.
	RecentItemsLimit = 5

	// MaxFocusMinutes bounds a single reported focus interval. Anything
	// larger than a day is a client bug, not a focus session.
	MaxFocusMinutes = 1440
)
