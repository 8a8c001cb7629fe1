package store

const (
	insertProfileQuery = `
		CREATE (p:Profile {
			id: $id,
			name: $name,
			normalized_name: $normalized_name,
			summary: $summary,
			hero_image_url: $hero_image_url,
			created_at: $created_at
		})
		RETURN p.id AS id
	`

	fuzzyProfileQuery = `
		MATCH (p:Profile)
		WHERE toLower(p.name) CONTAINS toLower($query)
		   OR toLower(p.summary) CONTAINS toLower($query)
		RETURN p.id AS id, p.name AS name, p.summary AS summary,
		       p.hero_image_url AS hero_image_url, p.created_at AS created_at
		ORDER BY p.created_at DESC
		LIMIT 10
	`

	exactNormalizedProfileQuery = `
		MATCH (p:Profile {normalized_name: $normalized_name})
		RETURN p.id AS id, p.name AS name, p.summary AS summary,
		       p.hero_image_url AS hero_image_url, p.created_at AS created_at
		LIMIT 1
	`

	getProfileQuery = `
		MATCH (p:Profile {id: $id})
		RETURN p.id AS id, p.name AS name, p.summary AS summary,
		       p.hero_image_url AS hero_image_url, p.created_at AS created_at
		LIMIT 1
	`

	insertEventQuery = `
		MATCH (p:Profile {id: $profile_id})
		CREATE (e:Event {
			id: $id,
			date: $date,
			event_text: $event_text,
			categories: $categories,
			source_url: $source_url,
			source_snippet: $source_snippet,
			confidence: $confidence,
			embedding: $embedding,
			created_at: $created_at
		})
		CREATE (p)-[:HAS_EVENT]->(e)
		RETURN e.id AS id
	`

	listEventsQuery = `
		MATCH (p:Profile {id: $profile_id})-[:HAS_EVENT]->(e:Event)
		RETURN e.id AS id, e.date AS date, e.event_text AS event_text,
		       e.categories AS categories, e.source_url AS source_url,
		       e.source_snippet AS source_snippet, e.confidence AS confidence
		ORDER BY e.date ASC
	`

	listProvenanceQuery = `
		MATCH (e:Event {id: $event_id})-[:SUPPORTED_BY]->(v:Provenance)
		RETURN v.id AS id, v.url AS url, v.snippet AS snippet,
		       v.note AS note, v.fetch_time AS fetch_time
		ORDER BY v.fetch_time ASC
	`

	insertProvenanceQuery = `
		MATCH (e:Event {id: $event_id})
		CREATE (v:Provenance {
			id: $id,
			url: $url,
			snippet: $snippet,
			note: $note,
			fetch_time: $fetch_time
		})
		CREATE (e)-[:SUPPORTED_BY]->(v)
		RETURN v.id AS id
	`
)
