package common

const (
	RedisStreamCopilotJobCreated = "copilot.job.created"

	// Backend endpoints, relative to the configured base URLs.
	EndpointNewsStream           = "/news/ws/ticker_news"
	EndpointRedditStream         = "/posts/ws/keyword_posts"
	EndpointSentimentAggregation = "/sentiments/sentiment_aggregation"
	EndpointSentimentPieChart    = "/sentiments/sentiment_pie_chart"
	EndpointChat                 = "/llm/chat/"
	EndpointStockDetails         = "/tickers/stock_details/"

	FeedRefreshMessage = "Request update"

	ChatSpecifyNeededID   = "specify_needed"
	ChatGenericErrorReply = "Sorry, there was an error processing your request."
)
