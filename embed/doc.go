// Package embed estimates latent positions of graphs by spectral
// decomposition of their adjacency matrices.
//
// 🚀 What lives here?
//
//   - AdjacencySpectral — adjacency spectral embedding (ASE): truncated SVD
//     of the (optionally diagonal-augmented) adjacency matrix, latent
//     positions X = U·√Σ. Directed graphs additionally get out-positions
//     from the right singular vectors.
//   - Omnibus — joint embedding of several graphs on the same vertex set
//     into one shared coordinate system, via the omnibus matrix with blocks
//     (Aᵢ+Aⱼ)/2.
//   - SelectDimension — automatic embedding dimension by Zhu–Ghodsi
//     profile-likelihood elbows of the singular value scree.
//   - SignFlips / Procrustes — alignment of embeddings that are only
//     identified up to an orthogonal transformation.
//
// ✨ Guarantees:
//
//   - Deterministic: decompositions are exact linear algebra, no sampling.
//   - For A = XXᵀ of rank ≤ d, AdjacencySpectral with Dim=d reconstructs A
//     as X̂X̂ᵀ up to numerical tolerance.
//   - Sentinel errors only; no panics on library paths.
//
// ⚙️ Usage:
//
//	emb, err := embed.AdjacencySpectral(a, embed.DefaultOptions())
//	if err != nil {
//	  // handle ErrNonSquare, ErrEmptyGraph, ErrDimTooLarge, ...
//	}
//	// emb.X is n×emb.Dim; emb.Values are the retained singular values.
//
// Dimension selection defaults to two elbows (the second elbow is kept),
// which retains signal dimensions past the first spectral gap.
package embed
