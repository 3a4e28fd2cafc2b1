// Package main implements aoc-fetch, a CLI tool that downloads the input of
// an Advent of Code problem and prepares a folder to solve it in.
//
// # Usage
//
//	aoc-fetch -d DAY -y YEAR [-s SESSION] [-t TEMPLATE] [-v] [--config PATH]
//
// A run creates day-<day>-<year>/input.txt in the current directory. When a
// template folder is given, its contents are copied into the same folder and
// may overwrite input.txt on a name clash. The folder must not exist yet.
//
// # Session cookie
//
// The session cookie given with -s is written verbatim to .session.lock and
// read back on later runs. The file is plaintext and not permission
// restricted.
//
// # Configuration
//
// Optional settings are read from aoc-fetch.json (or --config PATH) and from
// AOC_FETCH_* environment variables, which may also come from a .env file:
//
//	base_url      puzzle site, default https://adventofcode.com
//	user_agent    User-Agent header, default aoc-fetch
//	session_file  session cookie file, default .session.lock
//	timeout       HTTP timeout such as "30s", default none
//
// Set NO_COLOR to disable colored log output.
package main
