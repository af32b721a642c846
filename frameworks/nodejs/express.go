package nodejs

import (
	"github.com/dublyo/dockergen/frameworks"
)

// Express returns the Express.js framework
func Express() frameworks.Framework {
	return frameworks.Framework{
		Key:         frameworks.Express,
		Name:        "Express.js",
		Label:       "Express.js",
		Family:      frameworks.FamilyNode,
		Port:        3000,
		HostPort:    3000,
		Description: "Express.js web framework",
		URL:         "https://expressjs.com",
		Template:    expressTemplate,
		Markers: frameworks.Markers{
			Dependencies: []string{"express"},
			Files:        []string{"src/index.ts", "src/index.js", "tsconfig.json"},
		},
	}
}

const expressTemplate = `# Build stage
FROM node:{{.Version}} AS build

# Set working directory
WORKDIR /app

# Copy package files
COPY package*.json ./

# Install dependencies
RUN npm install

# Copy application files
COPY . .

# Production stage
FROM node:{{.Version}}-slim

# Set working directory
WORKDIR /app

# Copy package files
COPY --from=build /app/package*.json ./

# Install production dependencies only
RUN npm install --production

# Copy application files
COPY --from=build /app/src ./src
COPY --from=build /app/dist ./dist

# Set NODE_ENV
ENV NODE_ENV=production

# Expose default Express port
EXPOSE 3000

# Start the application
CMD ["node", "dist/index.js"]`
