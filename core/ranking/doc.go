// Package ranking turns a newest-first sequence of metadata records into a
// ranked view of URLs plus two summary series.
//
// Every function here is pure: it reads an immutable input and builds fresh
// output. Nothing is cached between calls, so callers can run any number of
// pipelines concurrently against different snapshots.
//
// Data flows through the package as follows:
//
//	records ─► FilterByDate ─┬─► CountKeywords ─► Rank(all records) ─► SearchTitles ─► Paginate
//	                         └─► SummarizeSubmissions
//
// Rank folds over the full record sequence while the frequency table it
// scores against is built from the date-filtered window. Changing the date
// range therefore changes scores but never removes a URL from the ranking.
package ranking
