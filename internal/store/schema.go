package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS records (
    file_path            TEXT PRIMARY KEY,
    total_cost           REAL NOT NULL DEFAULT 0,
    input_tokens         INTEGER NOT NULL DEFAULT 0,
    output_tokens        INTEGER NOT NULL DEFAULT 0,
    cache_creation       INTEGER NOT NULL DEFAULT 0,
    cache_read           INTEGER NOT NULL DEFAULT 0,
    decoded_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS record_models (
    file_path            TEXT NOT NULL REFERENCES records(file_path) ON DELETE CASCADE,
    model                TEXT NOT NULL,
    cost                 REAL NOT NULL DEFAULT 0,
    input_tokens         INTEGER NOT NULL DEFAULT 0,
    output_tokens        INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (file_path, model)
);

CREATE TABLE IF NOT EXISTS record_days (
    file_path            TEXT NOT NULL REFERENCES records(file_path) ON DELETE CASCADE,
    day                  TEXT NOT NULL,
    cost                 REAL NOT NULL DEFAULT 0,
    tokens               INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (file_path, day)
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_record_days_day ON record_days(day);
`
