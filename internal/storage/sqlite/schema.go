package sqlite

const schemaSQL = `
CREATE TABLE IF NOT EXISTS pending_segments (
	id TEXT PRIMARY KEY,
	video_id TEXT NOT NULL,
	start_time REAL NOT NULL,
	end_time REAL NOT NULL,
	category TEXT NOT NULL,
	action_type TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pending_segments_video
	ON pending_segments (video_id, start_time);

CREATE TABLE IF NOT EXISTS votes (
	id TEXT PRIMARY KEY,
	video_id TEXT NOT NULL,
	segment_uuid TEXT NOT NULL,
	direction TEXT NOT NULL,
	category TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_video
	ON votes (video_id, created_at);
`
