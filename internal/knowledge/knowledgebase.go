// Package knowledge holds the immutable gardening catalog consulted by the
// responder: topics with their keywords, ordered pattern rules and general
// answers, plus the fixed seasonal calendar.
package knowledge

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// CatalogFile is the YAML shape of a catalog document.
type CatalogFile struct {
	Topics []TopicDef `yaml:"topics"`
}

// TopicDef is the authoring form of a Topic.
type TopicDef struct {
	ID       string    `yaml:"id"`
	Keywords []string  `yaml:"keywords"`
	Rules    []RuleDef `yaml:"rules"`
	General  string    `yaml:"general"`
}

// RuleDef is the authoring form of a Rule.
type RuleDef struct {
	Pattern string `yaml:"pattern"`
	Answer  string `yaml:"answer"`
}

// KnowledgeBase is a validated, read-only topic catalog. It is safe for
// concurrent use; nothing mutates it after New returns.
type KnowledgeBase struct {
	topics []Topic
	index  map[string]int
}

// New validates defs and builds a KnowledgeBase preserving their order.
// Every problem found is reported; the returned error joins one
// *ValidationError per problem.
func New(defs []TopicDef) (*KnowledgeBase, error) {
	var errs []error
	if len(defs) == 0 {
		errs = append(errs, &ValidationError{Reason: "no topics defined"})
	}

	kb := &KnowledgeBase{
		topics: make([]Topic, 0, len(defs)),
		index:  make(map[string]int, len(defs)),
	}
	for i, def := range defs {
		topic, topicErrs := buildTopic(i, def)
		if len(topicErrs) > 0 {
			errs = append(errs, topicErrs...)
			continue
		}
		if _, dup := kb.index[topic.ID]; dup {
			errs = append(errs, &ValidationError{Topic: topic.ID, Field: "id", Reason: "duplicate topic id"})
			continue
		}
		kb.index[topic.ID] = len(kb.topics)
		kb.topics = append(kb.topics, topic)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return kb, nil
}

func buildTopic(pos int, def TopicDef) (Topic, []error) {
	var errs []error
	id := strings.TrimSpace(def.ID)
	label := id
	if id == "" {
		label = fmt.Sprintf("#%d", pos)
		errs = append(errs, &ValidationError{Topic: label, Field: "id", Reason: "topic id is required"})
	}

	keywords := make([]string, 0, len(def.Keywords))
	for i, kw := range def.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			errs = append(errs, &ValidationError{Topic: label, Field: fmt.Sprintf("keywords[%d]", i), Reason: "keyword is empty"})
			continue
		}
		keywords = append(keywords, kw)
	}
	if len(def.Keywords) == 0 {
		errs = append(errs, &ValidationError{Topic: label, Field: "keywords", Reason: "keyword set is empty"})
	}

	rules := make([]Rule, 0, len(def.Rules))
	for i, rd := range def.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		p, err := CompilePattern(rd.Pattern)
		if err != nil {
			errs = append(errs, &ValidationError{Topic: label, Field: field + ".pattern", Reason: "invalid pattern", Err: err})
			continue
		}
		if strings.TrimSpace(rd.Answer) == "" {
			errs = append(errs, &ValidationError{Topic: label, Field: field + ".answer", Reason: "answer is empty"})
			continue
		}
		rules = append(rules, Rule{Pattern: p, Answer: rd.Answer})
	}

	if strings.TrimSpace(def.General) == "" {
		reason := "general answer is empty"
		if len(def.Rules) == 0 {
			reason = "no rules and no general answer"
		}
		errs = append(errs, &ValidationError{Topic: label, Field: "general", Reason: reason})
	}

	return Topic{ID: id, Keywords: keywords, Rules: rules, GeneralAnswer: def.General}, errs
}

// Parse decodes a YAML catalog document and builds a KnowledgeBase from it.
func Parse(data []byte) (*KnowledgeBase, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &ValidationError{Reason: "malformed catalog document", Err: err}
	}
	return New(file.Topics)
}

// LoadFile reads and parses a YAML catalog from path.
func LoadFile(path string) (*KnowledgeBase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Default returns the built-in gardening catalog.
func Default() (*KnowledgeBase, error) {
	return Parse(builtinCatalog)
}

// MustDefault is like Default but panics on error. The built-in catalog is
// covered by tests, so a panic here means the embedded file was broken.
func MustDefault() *KnowledgeBase {
	kb, err := Default()
	if err != nil {
		panic(err)
	}
	return kb
}

// Lookup returns the topic with the given id.
func (kb *KnowledgeBase) Lookup(id string) (Topic, bool) {
	i, ok := kb.index[id]
	if !ok {
		return Topic{}, false
	}
	return kb.topics[i], true
}

// AllTopics returns the topics in declared order.
func (kb *KnowledgeBase) AllTopics() []Topic {
	out := make([]Topic, len(kb.topics))
	copy(out, kb.topics)
	return out
}

// TopicAt returns the i-th topic in declared order without copying the
// topic list. It panics when i is outside [0, Len()).
func (kb *KnowledgeBase) TopicAt(i int) Topic { return kb.topics[i] }

// TopicIDs returns the topic ids in declared order.
func (kb *KnowledgeBase) TopicIDs() []string {
	ids := make([]string, len(kb.topics))
	for i, t := range kb.topics {
		ids[i] = t.ID
	}
	return ids
}

// Len returns the number of topics.
func (kb *KnowledgeBase) Len() int { return len(kb.topics) }
