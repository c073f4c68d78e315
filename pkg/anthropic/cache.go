package anthropic

// BuildCachedSystemBlocks wraps a system prompt in a single block with a
// cache breakpoint. Prompts shared by many requests in one run, such as
// the policy drafting instructions, are billed at the cache-read rate
// after the first request.
func BuildCachedSystemBlocks(text, ttl string) []SystemBlock {
	if text == "" {
		return nil
	}
	return []SystemBlock{{Text: text, CacheControl: &CacheControl{TTL: ttl}}}
}
