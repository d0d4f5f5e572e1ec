package ensemble

import (
	"context"
	"fmt"
	"math"

	"github.com/TeneikaAskew/doha-sub000/internal/embeddings"
	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

const (
	// semanticChunkSize splits documents into windows small enough for the
	// embedding model's sequence limit.
	semanticChunkSize = 2000
	// semanticMaxChunks bounds embedding cost on long documents.
	semanticMaxChunks = 5
)

// semanticIndex holds precomputed guideline-concern embeddings and scores
// documents against them.
type semanticIndex struct {
	embedder  embeddings.Embedder
	guideline map[sead4.GuidelineCode][]float32
}

// newSemanticIndex embeds each guideline's name and concern text once up
// front.
func newSemanticIndex(ctx context.Context, embedder embeddings.Embedder) (*semanticIndex, error) {
	codes := sead4.Codes()
	texts := make([]string, 0, len(codes))
	for _, code := range codes {
		g := sead4.Guidelines[code]
		texts = append(texts, fmt.Sprintf("%s. %s", g.Name, g.Concern))
	}

	vectors, err := embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding guideline concerns: %w", err)
	}
	if len(vectors) != len(codes) {
		return nil, fmt.Errorf("%w: got %d vectors for %d guidelines", embeddings.ErrEmbeddingFailed, len(vectors), len(codes))
	}

	index := &semanticIndex{
		embedder:  embedder,
		guideline: make(map[sead4.GuidelineCode][]float32, len(codes)),
	}
	for i, code := range codes {
		index.guideline[code] = vectors[i]
	}
	return index, nil
}

// scoreAll embeds the document chunks once and returns, per guideline, the
// maximum cosine similarity between any chunk and the guideline embedding.
func (s *semanticIndex) scoreAll(ctx context.Context, text string) (map[sead4.GuidelineCode]float64, error) {
	chunks := chunkText(text, semanticChunkSize, semanticMaxChunks)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: document is empty", embeddings.ErrEmptyInput)
	}

	chunkVectors, err := s.embedder.EmbedDocuments(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("embedding document chunks: %w", err)
	}

	scores := make(map[sead4.GuidelineCode]float64, len(s.guideline))
	for code, guidelineVec := range s.guideline {
		best := 0.0
		for _, chunkVec := range chunkVectors {
			if sim := cosine32(guidelineVec, chunkVec); sim > best {
				best = sim
			}
		}
		scores[code] = best
	}
	return scores, nil
}

// chunkText splits text into fixed-size windows, keeping at most maxChunks.
func chunkText(text string, size, maxChunks int) []string {
	var chunks []string
	for i := 0; i < len(text) && len(chunks) < maxChunks; i += size {
		end := i + size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[i:end])
	}
	return chunks
}

// cosine32 computes cosine similarity between two float32 vectors.
func cosine32(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
