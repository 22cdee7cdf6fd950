package routing

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/stewardhq/steward/internal/schema"
)

const maxAlternatives = 3

// alternativeFloor filters noise matches out of the alternatives list.
const alternativeFloor = 0.1

// Router scores every collection against an input and picks the best match.
type Router struct {
	cfg      Config
	registry *schema.Registry
	logger   *slog.Logger
}

// New creates a Router over the given collection registry.
func New(cfg Config, registry *schema.Registry, logger *slog.Logger) *Router {
	return &Router{
		cfg:      cfg,
		registry: registry,
		logger:   logger.With("system", "routing"),
	}
}

// Route analyzes input and returns the best matching collection with a
// confidence score, tier, and up to three scored alternatives. When no
// collection scores above zero, the configured default collection is
// returned at the default confidence.
func (r *Router) Route(ctx context.Context, input string, uctx UserContext) Decision {
	normalized := normalize(input)

	var (
		semantic semanticAnalysis
		domains  domainAnalysis
		intents  intentAnalysis
	)

	// The three signal analyses are independent; run them concurrently.
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(3)
	g.Go(func() error {
		semantic = analyzeSemantic(normalized)
		return nil
	})
	g.Go(func() error {
		domains = analyzeDomains(normalized)
		return nil
	})
	g.Go(func() error {
		intents = analyzeIntents(normalized)
		return nil
	})
	g.Wait()

	scores := r.scoreCollections(normalized, semantic, domains, intents)
	decision := r.decide(scores, semantic, domains, intents)

	r.logger.Debug("request routed",
		"collection", decision.Collection,
		"confidence", decision.Confidence,
		"tier", decision.Tier,
		"authenticated", uctx.Authenticated,
	)
	return decision
}

type semanticAnalysis struct {
	matches  map[string][]string
	weighted map[string]float64
	total    float64
}

type domainScore struct {
	score       float64
	matched     []string
	collections []string
}

type domainAnalysis struct {
	scores  map[string]domainScore
	primary string
}

type patternMatch struct {
	name        string
	matched     []string
	collections []string
	weight      float64
	strength    float64
}

type intentAnalysis struct {
	matches []patternMatch
}

var whitespaceRE = regexp.MustCompile(`\s+`)

func normalize(input string) string {
	lowered := whitespaceRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(input)), " ")

	var kept []string
	for _, word := range strings.Split(lowered, " ") {
		if _, stop := stopWords[word]; !stop && word != "" {
			kept = append(kept, word)
		}
	}
	return strings.Join(kept, " ")
}

func analyzeSemantic(normalized string) semanticAnalysis {
	words := wordSet(normalized)
	analysis := semanticAnalysis{
		matches:  make(map[string][]string),
		weighted: make(map[string]float64),
	}

	for collection, keywords := range collectionKeywords {
		var matched []string
		weighted := 0.0
		for _, kw := range keywords {
			if _, ok := words[kw]; ok {
				matched = append(matched, kw)
				weighted += keywordWeight(collection, kw)
			}
		}
		if len(matched) > 0 {
			analysis.matches[collection] = matched
			analysis.weighted[collection] = weighted
			analysis.total += weighted
		}
	}
	return analysis
}

// keywordWeight returns a keyword's importance for a collection. Collections
// with a curated weight map score unlisted keywords at 0.5; all other
// collections count every keyword at full weight. Both numerator and
// normalization total use the same weighting, which keeps a collection's
// semantic score from dropping when one more of its keywords matches.
func keywordWeight(collection, keyword string) float64 {
	weights, ok := keywordWeights[collection]
	if !ok {
		return 1.0
	}
	if w, ok := weights[keyword]; ok {
		return w
	}
	return 0.5
}

func analyzeDomains(normalized string) domainAnalysis {
	words := wordSet(normalized)
	analysis := domainAnalysis{scores: make(map[string]domainScore)}

	best := 0.0
	for _, domain := range businessDomains {
		vocab := make(map[string]struct{})
		for _, collection := range domain.Collections {
			for _, w := range strings.Split(strings.ReplaceAll(collection, "_", " "), " ") {
				vocab[w] = struct{}{}
			}
		}

		var matched []string
		for w := range words {
			if _, ok := vocab[w]; ok {
				matched = append(matched, w)
			}
		}
		if len(matched) == 0 {
			continue
		}

		score := float64(len(matched)) / float64(max(len(vocab), 1))
		analysis.scores[domain.Name] = domainScore{
			score:       score,
			matched:     matched,
			collections: domain.Collections,
		}
		if score > best {
			best = score
			analysis.primary = domain.Name
		}
	}
	return analysis
}

func analyzeIntents(normalized string) intentAnalysis {
	var analysis intentAnalysis

	for _, pattern := range intentPatterns {
		var matched []string
		for _, kw := range pattern.Keywords {
			if strings.Contains(normalized, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}

		analysis.matches = append(analysis.matches, patternMatch{
			name:        pattern.Name,
			matched:     matched,
			collections: pattern.Collections,
			weight:      pattern.Weight,
			strength:    float64(len(matched)) / float64(len(pattern.Keywords)),
		})
	}
	return analysis
}

func (r *Router) scoreCollections(
	normalized string,
	semantic semanticAnalysis,
	domains domainAnalysis,
	intents intentAnalysis,
) []float64 {
	collections := r.registry.Collections()
	inputWords := wordSet(normalized)
	scores := make([]float64, len(collections))

	for i := range collections {
		name := collections[i].Name
		score := 0.0

		if weighted, ok := semantic.weighted[name]; ok {
			score += weighted / max(semantic.total, 1) * r.cfg.SemanticWeight
		}

		for _, ds := range domains.scores {
			if slices.Contains(ds.collections, name) {
				score += ds.score * r.cfg.DomainWeight
			}
		}

		for _, pm := range intents.matches {
			if slices.Contains(pm.collections, name) {
				score += pm.strength * pm.weight * r.cfg.IntentWeight
			}
		}

		nameWords := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
		overlap := 0
		for _, w := range nameWords {
			if _, ok := inputWords[w]; ok {
				overlap++
			}
		}
		if overlap > 0 {
			score += float64(overlap) / float64(len(nameWords)) * r.cfg.NameWeight
		}

		scores[i] = min(score, 1.0)
	}
	return scores
}

func (r *Router) decide(
	scores []float64,
	semantic semanticAnalysis,
	domains domainAnalysis,
	intents intentAnalysis,
) Decision {
	collections := r.registry.Collections()

	// Earlier catalog position wins ties: only a strictly greater score
	// replaces the current best.
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}

	if len(scores) == 0 || scores[best] == 0 {
		return Decision{
			Collection:      r.cfg.DefaultCollection,
			Confidence:      r.cfg.DefaultConfidence,
			Tier:            TierLow,
			Reasoning:       "No strong matches found, defaulting to " + r.cfg.DefaultCollection,
			Alternatives:    []string{},
			MatchedKeywords: []string{},
			Fallback:        true,
		}
	}

	target := collections[best].Name

	type ranked struct {
		index int
		score float64
	}
	order := make([]ranked, 0, len(scores))
	for i, s := range scores {
		if i != best && s > alternativeFloor {
			order = append(order, ranked{i, s})
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return order[a].score > order[b].score })

	alternatives := []string{}
	for _, rk := range order {
		if len(alternatives) == maxAlternatives {
			break
		}
		alternatives = append(alternatives, collections[rk.index].Name)
	}

	var allKeywords []string
	for _, matched := range semantic.matches {
		allKeywords = append(allKeywords, matched...)
	}
	slices.Sort(allKeywords)
	allKeywords = slices.Compact(allKeywords)
	if allKeywords == nil {
		allKeywords = []string{}
	}

	return Decision{
		Collection:      target,
		Confidence:      scores[best],
		Tier:            r.tier(scores[best]),
		Reasoning:       buildReasoning(target, semantic, domains, intents),
		Alternatives:    alternatives,
		MatchedKeywords: allKeywords,
		PrimaryDomain:   domains.primary,
	}
}

func (r *Router) tier(score float64) Tier {
	switch {
	case score >= r.cfg.HighThreshold:
		return TierHigh
	case score >= r.cfg.MediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

func buildReasoning(
	target string,
	semantic semanticAnalysis,
	domains domainAnalysis,
	intents intentAnalysis,
) string {
	var parts []string

	if matched, ok := semantic.matches[target]; ok {
		parts = append(parts, fmt.Sprintf("Keywords matched: %s", strings.Join(matched, ", ")))
	}
	if domains.primary != "" {
		parts = append(parts, fmt.Sprintf("Business domain: %s", domains.primary))
	}
	if len(intents.matches) > 0 {
		names := make([]string, len(intents.matches))
		for i, pm := range intents.matches {
			names[i] = pm.name
		}
		parts = append(parts, fmt.Sprintf("Intent patterns: %s", strings.Join(names, ", ")))
	}

	if len(parts) == 0 {
		return "Score-based analysis"
	}
	return strings.Join(parts, "; ")
}

func wordSet(normalized string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Split(normalized, " ") {
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
