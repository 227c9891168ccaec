package db

const createRunsTable = `
CREATE TABLE IF NOT EXISTS timing_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    algo TEXT NOT NULL,
    n INTEGER NOT NULL,
    k INTEGER NOT NULL DEFAULT 0,
    input_preview TEXT,
    output_preview TEXT,
    elapsed_ns INTEGER NOT NULL,
    err_kind TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_algo_n ON timing_runs(algo, n);
`

const insertRun = `
INSERT INTO timing_runs (
    algo, n, k, input_preview, output_preview, elapsed_ns, err_kind, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

// selectRuns is completed by buildRunQuery with the filter's WHERE clause
const selectRuns = `
SELECT id, algo, n, k, COALESCE(input_preview, ''), COALESCE(output_preview, ''),
       elapsed_ns, err_kind, created_at
FROM timing_runs
`

// Failed runs are kept in the table but left out of the aggregates
const selectAlgoStats = `
SELECT
    algo,
    n,
    COUNT(*) as runs,
    MIN(elapsed_ns),
    CAST(AVG(elapsed_ns) AS INTEGER),
    MAX(elapsed_ns)
FROM timing_runs
WHERE (? = '' OR algo = ?) AND err_kind = ''
GROUP BY algo, n
ORDER BY algo, n
`

const selectRunCount = `
SELECT COUNT(*) FROM timing_runs WHERE (? = '' OR algo = ?)
`

const deleteRuns = `
DELETE FROM timing_runs WHERE (? = '' OR algo = ?)
`
