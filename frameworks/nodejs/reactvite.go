package nodejs

import (
	"github.com/dublyo/dockergen/frameworks"
)

// ReactVite returns the React + Vite framework: a Node build stage followed by
// an nginx stage serving the static bundle.
func ReactVite() frameworks.Framework {
	return frameworks.Framework{
		Key:         frameworks.ReactVite,
		Name:        "React Vite",
		Label:       "React with Vite",
		Family:      frameworks.FamilyNode,
		Port:        80,
		HostPort:    8080,
		Description: "React single-page app built with Vite and served by nginx",
		URL:         "https://vitejs.dev",
		Template:    reactViteTemplate,
		Markers: frameworks.Markers{
			Dependencies: []string{"react", "vite"},
			Files:        []string{"vite.config.ts", "vite.config.js", "index.html"},
		},
	}
}

const reactViteTemplate = `# Build stage
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
FROM nginx:alpine

# Copy built assets from build stage
COPY --from=build /app/dist /usr/share/nginx/html

# Expose port 80
EXPOSE 80

# Start nginx
CMD ["nginx", "-g", "daemon off;"]`
