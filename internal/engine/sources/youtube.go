package sources

// YouTube implementation is split across three files by responsibility:
//   youtube_innertube.go — Innertube API types, constants, and low-level HTTP primitives
//   youtube_captions.go  — caption track discovery, transcript fetching with
//                          language/translation fallback
//   youtube_dataapi.go   — Data API v3 (titles, playlist/channel expansion) and
//                          the public oEmbed title fallback
