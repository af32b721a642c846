package nodejs

import (
	"github.com/dublyo/dockergen/frameworks"
)

// NextJS returns the Next.js framework
func NextJS() frameworks.Framework {
	return frameworks.Framework{
		Key:         frameworks.NextJS,
		Name:        "Next.js",
		Label:       "Next.js",
		Family:      frameworks.FamilyNode,
		Port:        3000,
		HostPort:    3000,
		Description: "Next.js React framework",
		URL:         "https://nextjs.org",
		Template:    nextjsTemplate,
		Markers: frameworks.Markers{
			Dependencies: []string{"next"},
			Files:        []string{"next.config.js", "next.config.mjs", "next.config.ts"},
		},
	}
}

const nextjsTemplate = `# Build stage
FROM node:{{.Version}} AS build

# Set working directory
WORKDIR /app

# Copy package files
COPY package*.json ./

# Install dependencies
RUN npm install

# Copy all other source code files
COPY . .

# Build the application
RUN npm run build

# Production stage
FROM node:{{.Version}}-slim

# Set working directory
WORKDIR /app

# Copy package files
COPY --from=build /app/package*.json ./

# Install only production dependencies
RUN npm install --production

# Copy built application
COPY --from=build /app/.next ./.next
COPY --from=build /app/public ./public
COPY --from=build /app/next.config.js ./next.config.js

# Expose port 3000
EXPOSE 3000

# Start Next.js
CMD ["npm", "start"]`
